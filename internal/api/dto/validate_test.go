package dto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/spec-kit/board-service/pkg/util"
)

func TestValidate_SignupBounds(t *testing.T) {
	cases := []struct {
		name    string
		req     SignupRequest
		wantErr bool
	}{
		{"valid", SignupRequest{Username: "alice", Password: "secret1"}, false},
		{"username too short", SignupRequest{Username: "ab", Password: "secret1"}, true},
		{"username too long", SignupRequest{Username: strings.Repeat("a", 51), Password: "secret1"}, true},
		{"password too short", SignupRequest{Username: "alice", Password: "12345"}, true},
		{"password too long", SignupRequest{Username: "alice", Password: strings.Repeat("p", 101)}, true},
		{"missing username", SignupRequest{Password: "secret1"}, true},
		{"boundary lengths", SignupRequest{Username: strings.Repeat("u", 50), Password: strings.Repeat("p", 100)}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.req)
			if tc.wantErr {
				assert.True(t, apperrors.IsCode(err, "VALIDATION_FAILED"))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_SigninRequiresBothFields(t *testing.T) {
	assert.NoError(t, Validate(SigninRequest{Username: "alice", Password: "x"}))
	assert.Error(t, Validate(SigninRequest{Username: "alice"}))
	assert.Error(t, Validate(SigninRequest{Password: "x"}))
}

func TestValidate_PostAndCommentPayloads(t *testing.T) {
	assert.NoError(t, Validate(CreatePostRequest{Title: "x", Content: "y"}))
	assert.Error(t, Validate(CreatePostRequest{Title: "", Content: "y"}))
	assert.Error(t, Validate(CreatePostRequest{Title: strings.Repeat("t", 201), Content: "y"}))
	assert.Error(t, Validate(CreateCommentRequest{}))
	assert.NoError(t, Validate(UpdateCommentRequest{Content: "z"}))
}
