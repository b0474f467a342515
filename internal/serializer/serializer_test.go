package serializer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meera-joshi/student-registry/internal/serializer"
	"github.com/meera-joshi/student-registry/internal/types"
)

func TestBindStudentValid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want types.Student
	}{
		{
			"name only",
			`{"name": "Ada"}`,
			types.Student{Name: "Ada"},
		},
		{
			"all fields",
			`{"name": "Grace", "email": "grace@navy.mil", "age": 37}`,
			types.Student{Name: "Grace", Email: "grace@navy.mil", Age: 37},
		},
		{
			"client-supplied id is discarded",
			`{"id": 99, "name": "Ada"}`,
			types.Student{Name: "Ada"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			student, fieldErrs, err := serializer.BindStudent(strings.NewReader(tt.body))

			require.NoError(t, err)
			require.Empty(t, fieldErrs)
			assert.Equal(t, tt.want, student)
		})
	}
}

func TestBindStudentFieldErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want serializer.FieldErrors
	}{
		{
			"missing name",
			`{}`,
			serializer.FieldErrors{"name": {"This field is required."}},
		},
		{
			"missing name with other fields present",
			`{"email": "ada@example.com", "age": 21}`,
			serializer.FieldErrors{"name": {"This field is required."}},
		},
		{
			"invalid email",
			`{"name": "Ada", "email": "not-an-email"}`,
			serializer.FieldErrors{"email": {"Enter a valid email address."}},
		},
		{
			"negative age",
			`{"name": "Ada", "age": -3}`,
			serializer.FieldErrors{"age": {"Ensure this value is greater than or equal to 0."}},
		},
		{
			"name has wrong type",
			`{"name": 123}`,
			serializer.FieldErrors{"name": {"Not a valid string."}},
		},
		{
			"age has wrong type",
			`{"name": "Ada", "age": "twenty"}`,
			serializer.FieldErrors{"age": {"A valid integer is required."}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, fieldErrs, err := serializer.BindStudent(strings.NewReader(tt.body))

			require.NoError(t, err)
			assert.Equal(t, tt.want, fieldErrs)
		})
	}
}

func TestBindStudentBodyErrors(t *testing.T) {
	t.Run("empty body", func(t *testing.T) {
		_, fieldErrs, err := serializer.BindStudent(strings.NewReader(""))

		assert.ErrorIs(t, err, serializer.ErrEmptyBody)
		assert.Empty(t, fieldErrs)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, fieldErrs, err := serializer.BindStudent(strings.NewReader(`{"name": `))

		assert.Error(t, err)
		assert.NotErrorIs(t, err, serializer.ErrEmptyBody)
		assert.Empty(t, fieldErrs)
	})
}
