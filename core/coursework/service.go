package coursework

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/code-sharingan/Learning-management-system/core"
)

var (
	// errors
	ErrClassNotFound      = core.NewRejection("class not found")
	ErrCategoryNotFound   = core.NewRejection("assignment category not found")
	ErrCategoryExists     = core.NewRejection("an assignment category with this name already exists in the class")
	ErrAssignmentNotFound = core.NewRejection("assignment not found")
	ErrAssignmentExists   = core.NewRejection("an assignment with this name already exists in the category")
	ErrStudentNotFound    = core.NewRejection("student not found")

	// ErrSubmissionNotFound is returned when grading a submission that does not exist.
	// It is not a rejection: callers are expected to only grade listed submissions.
	ErrSubmissionNotFound = errors.New("submission not found")
)

var nowFunc = func() time.Time { return time.Now().UTC() }

type (
	// Repository implementations report missing rows and duplicate keys with the
	// package's errors.
	Repository interface {
		GetClassID(ctx context.Context, exec core.DBExecutor, key core.ClassKey) (int, error)
		GetCategory(ctx context.Context, exec core.DBExecutor, classID int, name string) (Category, error)
		CreateCategory(ctx context.Context, exec core.DBExecutor, cat Category) error
		QueryCategories(ctx context.Context, exec core.DBExecutor, key core.ClassKey) ([]Category, error)

		GetAssignment(ctx context.Context, exec core.DBExecutor, key AssignmentKey) (Assignment, error)
		CreateAssignment(ctx context.Context, exec core.DBExecutor, asg Assignment) error
		// QueryAssignments lists the class's assignments, of every category when category is empty.
		QueryAssignments(ctx context.Context, exec core.DBExecutor, key core.ClassKey, category string) ([]AssignmentListing, error)
		QueryStudentAssignments(ctx context.Context, exec core.DBExecutor, key core.ClassKey, uid string) ([]StudentAssignment, error)

		GetSubmission(ctx context.Context, exec core.DBExecutor, assignmentID int, uid string) (Submission, error)
		CreateSubmission(ctx context.Context, exec core.DBExecutor, sub Submission) error
		UpdateSubmission(ctx context.Context, exec core.DBExecutor, sub Submission) error
		QuerySubmissions(ctx context.Context, exec core.DBExecutor, key AssignmentKey) ([]SubmissionListing, error)
		// SetScore returns ErrSubmissionNotFound when the student has no submission.
		SetScore(ctx context.Context, exec core.DBExecutor, assignmentID int, uid string, score int) error

		QueryCategoryScores(ctx context.Context, exec core.DBExecutor, classID int, uid string) ([]CategoryScore, error)
		// SetClassGrade updates the student's enrollment grade, if enrolled.
		SetClassGrade(ctx context.Context, exec core.DBExecutor, classID int, uid, grade string) error
	}

	Service interface {
		CreateCategory(ctx context.Context, nc NewCategory) error
		QueryCategories(ctx context.Context, key core.ClassKey) ([]Category, error)
		CreateAssignment(ctx context.Context, na NewAssignment) error
		QueryAssignments(ctx context.Context, key core.ClassKey, category string) ([]AssignmentListing, error)
		QuerySubmissions(ctx context.Context, key AssignmentKey) ([]SubmissionListing, error)
		Submit(ctx context.Context, ns NewSubmission) error
		Grade(ctx context.Context, ng NewGrade) error
		AssignmentContents(ctx context.Context, key AssignmentKey) (string, error)
		SubmissionText(ctx context.Context, key AssignmentKey, uid string) (string, error)
		StudentAssignments(ctx context.Context, key core.ClassKey, uid string) ([]StudentAssignment, error)
	}

	service struct {
		db   core.DB
		repo Repository
	}
)

var _ Service = (*service)(nil) // interface compliance check

func NewService(db core.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (svc *service) CreateCategory(ctx context.Context, nc NewCategory) error {
	return core.RunInTx(ctx, svc.db, core.ReadCommitted, func(tx core.DBExecutor) error {
		classID, err := svc.repo.GetClassID(ctx, tx, nc.ClassKey)
		if err != nil {
			return err
		}
		return svc.repo.CreateCategory(ctx, tx, Category{ClassID: classID, Name: nc.Name, Weight: nc.Weight})
	})
}

func (svc *service) QueryCategories(ctx context.Context, key core.ClassKey) ([]Category, error) {
	key.Clean()
	return svc.repo.QueryCategories(ctx, svc.db, key)
}

func (svc *service) CreateAssignment(ctx context.Context, na NewAssignment) error {
	return core.RunInTx(ctx, svc.db, core.ReadCommitted, func(tx core.DBExecutor) error {
		classID, err := svc.repo.GetClassID(ctx, tx, na.ClassKey)
		if err != nil {
			return err
		}
		cat, err := svc.repo.GetCategory(ctx, tx, classID, na.Category)
		if err != nil {
			return err
		}
		return svc.repo.CreateAssignment(ctx, tx, Assignment{
			CategoryID: cat.ID,
			ClassID:    classID,
			Name:       na.Name,
			Contents:   na.Contents,
			Due:        na.Due.UTC(),
			Points:     na.Points,
		})
	})
}

func (svc *service) QueryAssignments(ctx context.Context, key core.ClassKey, category string) ([]AssignmentListing, error) {
	key.Clean()
	return svc.repo.QueryAssignments(ctx, svc.db, key, core.CleanString(category))
}

func (svc *service) QuerySubmissions(ctx context.Context, key AssignmentKey) ([]SubmissionListing, error) {
	key.Clean()
	return svc.repo.QuerySubmissions(ctx, svc.db, key)
}

// Submit stores a student's submission. A re-submission replaces the contents and
// time of the previous one but keeps its score.
func (svc *service) Submit(ctx context.Context, ns NewSubmission) error {
	return core.RunInTx(ctx, svc.db, core.ReadCommitted, func(tx core.DBExecutor) error {
		asg, err := svc.repo.GetAssignment(ctx, tx, ns.AssignmentKey)
		if err != nil {
			return err
		}

		sub, err := svc.repo.GetSubmission(ctx, tx, asg.ID, ns.UID)
		switch err {
		case nil:
			sub.Contents = ns.Contents
			sub.Time = nowFunc()
			return svc.repo.UpdateSubmission(ctx, tx, sub)
		case ErrSubmissionNotFound:
			return svc.repo.CreateSubmission(ctx, tx, Submission{
				UID:          ns.UID,
				AssignmentID: asg.ID,
				Time:         nowFunc(),
				Contents:     ns.Contents,
			})
		default:
			return err
		}
	})
}

// Grade scores a student's submission and recomputes their letter grade in the class.
// Concurrent grades of the same student fail with core.ErrTxConflict instead of
// overwriting the letter grade with a stale one.
func (svc *service) Grade(ctx context.Context, ng NewGrade) error {
	return core.RunInTx(ctx, svc.db, core.Serializable, func(tx core.DBExecutor) error {
		asg, err := svc.repo.GetAssignment(ctx, tx, ng.AssignmentKey)
		if err != nil {
			return err
		}
		if err = svc.repo.SetScore(ctx, tx, asg.ID, ng.UID, ng.Score); err != nil {
			return err
		}

		scores, err := svc.repo.QueryCategoryScores(ctx, tx, asg.ClassID, ng.UID)
		if err != nil {
			return errors.Wrap(err, "querying category scores")
		}
		return svc.repo.SetClassGrade(ctx, tx, asg.ClassID, ng.UID, ClassGrade(scores))
	})
}

func (svc *service) AssignmentContents(ctx context.Context, key AssignmentKey) (string, error) {
	key.Clean()
	asg, err := svc.repo.GetAssignment(ctx, svc.db, key)
	if err != nil {
		return "", err
	}
	return asg.Contents, nil
}

// SubmissionText returns the student's submitted text, empty when they did not submit.
func (svc *service) SubmissionText(ctx context.Context, key AssignmentKey, uid string) (string, error) {
	key.Clean()
	asg, err := svc.repo.GetAssignment(ctx, svc.db, key)
	if err != nil {
		return "", err
	}
	sub, err := svc.repo.GetSubmission(ctx, svc.db, asg.ID, core.CleanString(uid))
	if err == ErrSubmissionNotFound {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return sub.Contents, nil
}

func (svc *service) StudentAssignments(ctx context.Context, key core.ClassKey, uid string) ([]StudentAssignment, error) {
	key.Clean()
	return svc.repo.QueryStudentAssignments(ctx, svc.db, key, core.CleanString(uid))
}
