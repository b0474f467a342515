package response_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meera-joshi/student-registry/internal/utils/response"
)

func TestWriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()

	err := response.WriteJSON(rr, http.StatusTeapot, map[string]int{"n": 1})

	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"n": 1}`, rr.Body.String())
}

func TestGeneralError(t *testing.T) {
	resp := response.GeneralError(errors.New("boom"))

	assert.Equal(t, response.Response{
		Status: response.StatusError,
		Error:  "boom",
	}, resp)
}
