package campaign

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		row    Row
		want   string
		wantOK bool
	}{
		{
			name:   "exact column",
			row:    Row{{Name: "Name", Value: "Ann"}, {Name: "email", Value: "ann@example.com"}},
			want:   "ann@example.com",
			wantOK: true,
		},
		{
			name:   "case insensitive substring",
			row:    Row{{Name: "Work E-Mail", Value: "x"}, {Name: "Contact EMAIL Address", Value: "bob@example.com"}},
			want:   "bob@example.com",
			wantOK: true,
		},
		{
			name:   "first matching column wins",
			row:    Row{{Name: "Email", Value: "first@example.com"}, {Name: "Email 2", Value: "second@example.com"}},
			want:   "first@example.com",
			wantOK: true,
		},
		{
			name:   "empty matching column is skipped",
			row:    Row{{Name: "Email", Value: ""}, {Name: "Backup email", Value: "backup@example.com"}},
			want:   "backup@example.com",
			wantOK: true,
		},
		{
			name:   "lookalike letters do not match",
			row:    Row{{Name: "ЕMAIL", Value: "no"}, {Name: "EMAİL", Value: "dotted@example.com"}},
			wantOK: false,
		},
		{
			name:   "value is returned as is",
			row:    Row{{Name: "email", Value: "not an address"}},
			want:   "not an address",
			wantOK: true,
		},
		{
			name:   "no matching column",
			row:    Row{{Name: "Name", Value: "Ann"}, {Name: "Phone", Value: "123"}},
			wantOK: false,
		},
		{
			name:   "empty row",
			row:    Row{},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := EmailField(tt.row)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtract(t *testing.T) {
	t.Parallel()

	t.Run("preserves row order and skips rows without candidates", func(t *testing.T) {
		t.Parallel()

		rows := []Row{
			{{Name: "Email", Value: "c@example.com"}},
			{{Name: "Name", Value: "no email"}},
			{{Name: "Email", Value: "a@example.com"}},
			{},
			{{Name: "Email", Value: "b@example.com"}},
		}

		assert.Equal(t, []string{"c@example.com", "a@example.com", "b@example.com"}, Extract(rows))
	})

	t.Run("keeps duplicates", func(t *testing.T) {
		t.Parallel()

		rows := []Row{
			{{Name: "Email", Value: "dup@example.com"}},
			{{Name: "Email", Value: "dup@example.com"}},
		}

		assert.Equal(t, []string{"dup@example.com", "dup@example.com"}, Extract(rows))
	})

	t.Run("nil rows", func(t *testing.T) {
		t.Parallel()

		got := Extract(nil)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestRow_Get(t *testing.T) {
	t.Parallel()

	row := Row{{Name: "Name", Value: "Ann"}, {Name: "Email", Value: "ann@example.com"}}

	v, ok := row.Get("Email")
	assert.True(t, ok)
	assert.Equal(t, "ann@example.com", v)

	_, ok = row.Get("email")
	assert.False(t, ok)
}
