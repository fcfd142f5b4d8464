package inmemdb

import (
	"context"
	"sort"

	"github.com/volatiletech/null/v8"

	"github.com/code-sharingan/Learning-management-system/core"
	"github.com/code-sharingan/Learning-management-system/core/coursework"
	"github.com/code-sharingan/Learning-management-system/core/people"
)

type courseworkRepository struct {
	db *DB
}

var _ coursework.Repository = (*courseworkRepository)(nil) // interface compliance check

func NewCourseworkRepository(db *DB) *courseworkRepository {
	return &courseworkRepository{db: db}
}

// assignment resolves an assignment by its natural key.
func (t *tables) assignment(key coursework.AssignmentKey) (coursework.Assignment, bool) {
	classID, ok := t.classID(key.ClassKey)
	if !ok {
		return coursework.Assignment{}, false
	}
	for _, asg := range t.assignments {
		cat := t.categories[asg.CategoryID]
		if cat.ClassID == classID && cat.Name == key.Category && asg.Name == key.Name {
			return asg, true
		}
	}
	return coursework.Assignment{}, false
}

func (repo *courseworkRepository) GetClassID(_ context.Context, _ core.DBExecutor, key core.ClassKey) (id int, err error) {
	repo.db.read(func(t *tables) {
		var ok bool
		if id, ok = t.classID(key); !ok {
			err = coursework.ErrClassNotFound
		}
	})
	return id, err
}

func (repo *courseworkRepository) GetCategory(_ context.Context, _ core.DBExecutor, classID int, name string) (cat coursework.Category, err error) {
	err = coursework.ErrCategoryNotFound
	repo.db.read(func(t *tables) {
		for _, c := range t.categories {
			if c.ClassID == classID && c.Name == name {
				cat, err = c, nil
				return
			}
		}
	})
	return cat, err
}

func (repo *courseworkRepository) CreateCategory(_ context.Context, _ core.DBExecutor, cat coursework.Category) error {
	return repo.db.write(func(t *tables) error {
		for _, c := range t.categories {
			if c.ClassID == cat.ClassID && c.Name == cat.Name {
				return coursework.ErrCategoryExists
			}
		}
		if _, ok := t.classes[cat.ClassID]; !ok {
			return coursework.ErrClassNotFound
		}
		cat.ID = t.nextID()
		t.categories[cat.ID] = cat
		return nil
	})
}

func (repo *courseworkRepository) QueryCategories(_ context.Context, _ core.DBExecutor, key core.ClassKey) ([]coursework.Category, error) {
	cats := make([]coursework.Category, 0)
	repo.db.read(func(t *tables) {
		classID, ok := t.classID(key)
		if !ok {
			return
		}
		for _, c := range t.categories {
			if c.ClassID == classID {
				cats = append(cats, c)
			}
		}
	})
	sort.Slice(cats, func(i, j int) bool { return cats[i].Name < cats[j].Name })
	return cats, nil
}

func (repo *courseworkRepository) GetAssignment(_ context.Context, _ core.DBExecutor, key coursework.AssignmentKey) (asg coursework.Assignment, err error) {
	repo.db.read(func(t *tables) {
		var ok bool
		if asg, ok = t.assignment(key); !ok {
			err = coursework.ErrAssignmentNotFound
		}
	})
	return asg, err
}

func (repo *courseworkRepository) CreateAssignment(_ context.Context, _ core.DBExecutor, asg coursework.Assignment) error {
	return repo.db.write(func(t *tables) error {
		for _, a := range t.assignments {
			if a.CategoryID == asg.CategoryID && a.Name == asg.Name {
				return coursework.ErrAssignmentExists
			}
		}
		cat, ok := t.categories[asg.CategoryID]
		if !ok {
			return coursework.ErrCategoryNotFound
		}
		asg.ID = t.nextID()
		asg.ClassID = cat.ClassID
		t.assignments[asg.ID] = asg
		return nil
	})
}

func (t *tables) classAssignments(key core.ClassKey) []coursework.Assignment {
	classID, ok := t.classID(key)
	if !ok {
		return nil
	}
	asgs := make([]coursework.Assignment, 0)
	for _, a := range t.assignments {
		if t.categories[a.CategoryID].ClassID == classID {
			asgs = append(asgs, a)
		}
	}
	sort.Slice(asgs, func(i, j int) bool {
		if !asgs[i].Due.Equal(asgs[j].Due) {
			return asgs[i].Due.Before(asgs[j].Due)
		}
		return asgs[i].Name < asgs[j].Name
	})
	return asgs
}

func (repo *courseworkRepository) QueryAssignments(_ context.Context, _ core.DBExecutor, key core.ClassKey, category string) ([]coursework.AssignmentListing, error) {
	listing := make([]coursework.AssignmentListing, 0)
	repo.db.read(func(t *tables) {
		for _, a := range t.classAssignments(key) {
			cat := t.categories[a.CategoryID]
			if category != "" && cat.Name != category {
				continue
			}
			var count int
			for k := range t.submissions {
				if k.assignmentID == a.ID {
					count++
				}
			}
			listing = append(listing, coursework.AssignmentListing{Name: a.Name, Category: cat.Name, Due: a.Due, Submissions: count})
		}
	})
	return listing, nil
}

func (repo *courseworkRepository) QueryStudentAssignments(_ context.Context, _ core.DBExecutor, key core.ClassKey, uid string) ([]coursework.StudentAssignment, error) {
	listing := make([]coursework.StudentAssignment, 0)
	repo.db.read(func(t *tables) {
		classID, ok := t.classID(key)
		if !ok {
			return
		}
		if _, enrolled := t.enrolled[enrollKey{uid: uid, classID: classID}]; !enrolled {
			return
		}
		for _, a := range t.classAssignments(key) {
			sa := coursework.StudentAssignment{Name: a.Name, Category: t.categories[a.CategoryID].Name, Due: a.Due}
			if sub, ok := t.submissions[submissionKey{uid: uid, assignmentID: a.ID}]; ok {
				sa.Score = null.IntFrom(sub.Score)
			}
			listing = append(listing, sa)
		}
	})
	return listing, nil
}

func (repo *courseworkRepository) GetSubmission(_ context.Context, _ core.DBExecutor, assignmentID int, uid string) (sub coursework.Submission, err error) {
	repo.db.read(func(t *tables) {
		var ok bool
		if sub, ok = t.submissions[submissionKey{uid: uid, assignmentID: assignmentID}]; !ok {
			err = coursework.ErrSubmissionNotFound
		}
	})
	return sub, err
}

func (repo *courseworkRepository) CreateSubmission(_ context.Context, _ core.DBExecutor, sub coursework.Submission) error {
	return repo.db.write(func(t *tables) error {
		key := submissionKey{uid: sub.UID, assignmentID: sub.AssignmentID}
		if _, ok := t.submissions[key]; ok {
			return core.ErrTxConflict
		}
		if !t.hasRole(sub.UID, people.RoleStudent) {
			return coursework.ErrStudentNotFound
		}
		if _, ok := t.assignments[sub.AssignmentID]; !ok {
			return coursework.ErrAssignmentNotFound
		}
		t.submissions[key] = sub
		return nil
	})
}

func (repo *courseworkRepository) UpdateSubmission(_ context.Context, _ core.DBExecutor, sub coursework.Submission) error {
	return repo.db.write(func(t *tables) error {
		key := submissionKey{uid: sub.UID, assignmentID: sub.AssignmentID}
		if prev, ok := t.submissions[key]; ok {
			prev.Time = sub.Time
			prev.Contents = sub.Contents
			t.submissions[key] = prev
		}
		return nil
	})
}

func (repo *courseworkRepository) QuerySubmissions(_ context.Context, _ core.DBExecutor, key coursework.AssignmentKey) ([]coursework.SubmissionListing, error) {
	listing := make([]coursework.SubmissionListing, 0)
	repo.db.read(func(t *tables) {
		asg, ok := t.assignment(key)
		if !ok {
			return
		}
		for k, sub := range t.submissions {
			if k.assignmentID != asg.ID {
				continue
			}
			st := t.people[sub.UID]
			listing = append(listing, coursework.SubmissionListing{
				FirstName: st.FirstName,
				LastName:  st.LastName,
				UID:       sub.UID,
				Time:      sub.Time,
				Score:     sub.Score,
			})
		}
	})
	sort.Slice(listing, func(i, j int) bool {
		a, b := listing[i], listing[j]
		if a.LastName != b.LastName {
			return a.LastName < b.LastName
		}
		if a.FirstName != b.FirstName {
			return a.FirstName < b.FirstName
		}
		return a.UID < b.UID
	})
	return listing, nil
}

func (repo *courseworkRepository) SetScore(_ context.Context, _ core.DBExecutor, assignmentID int, uid string, score int) error {
	return repo.db.write(func(t *tables) error {
		key := submissionKey{uid: uid, assignmentID: assignmentID}
		sub, ok := t.submissions[key]
		if !ok {
			return coursework.ErrSubmissionNotFound
		}
		sub.Score = score
		t.submissions[key] = sub
		return nil
	})
}

func (repo *courseworkRepository) QueryCategoryScores(_ context.Context, _ core.DBExecutor, classID int, uid string) ([]coursework.CategoryScore, error) {
	byCategory := make(map[int]*coursework.CategoryScore)
	repo.db.read(func(t *tables) {
		for _, a := range t.assignments {
			cat := t.categories[a.CategoryID]
			if cat.ClassID != classID {
				continue
			}
			cs, ok := byCategory[cat.ID]
			if !ok {
				cs = &coursework.CategoryScore{CategoryID: cat.ID, Weight: cat.Weight}
				byCategory[cat.ID] = cs
			}
			cs.Points += a.Points
			if sub, ok := t.submissions[submissionKey{uid: uid, assignmentID: a.ID}]; ok {
				cs.Earned += sub.Score
			}
		}
	})

	scores := make([]coursework.CategoryScore, 0, len(byCategory))
	for _, cs := range byCategory {
		scores = append(scores, *cs)
	}
	sort.Slice(scores, func(i, j int) bool { return scores[i].CategoryID < scores[j].CategoryID })
	return scores, nil
}

func (repo *courseworkRepository) SetClassGrade(_ context.Context, _ core.DBExecutor, classID int, uid, grade string) error {
	return repo.db.write(func(t *tables) error {
		key := enrollKey{uid: uid, classID: classID}
		if enr, ok := t.enrolled[key]; ok {
			enr.Grade = grade
			t.enrolled[key] = enr
		}
		return nil
	})
}
