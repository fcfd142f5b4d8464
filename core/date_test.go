package core

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSON(t *testing.T) {
	d := NewDate(2001, time.March, 9)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2001-03-09"`, string(data))

	var parsed Date
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.True(t, parsed.Equal(d.Time))

	data, err = json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))

	assert.Error(t, json.Unmarshal([]byte(`"09/03/2001"`), &parsed))
}

func TestDate_Scan(t *testing.T) {
	want := NewDate(1999, time.December, 31)
	tests := []struct {
		name    string
		value   interface{}
		want    Date
		wantErr bool
	}{
		{name: "nil", value: nil, want: Date{}},
		{name: "time", value: time.Date(1999, time.December, 31, 13, 4, 5, 0, time.UTC), want: want},
		{name: "bytes", value: []byte("1999-12-31"), want: want},
		{name: "datetime string", value: "1999-12-31 00:00:00", want: want},
		{name: "unsupported", value: 42, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := d.Scan(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Date.Scan() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !d.Equal(tt.want.Time) {
				t.Errorf("Date.Scan() = %v, want %v", d, tt.want)
			}
		})
	}
}
