package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBytes_Tweets(t *testing.T) {
	v := NewSchemaValidator()

	tests := []struct {
		name    string
		data    string
		pointer string
		keyword string
	}{
		{
			name: "numeric and string ids",
			data: `{"tweets":[{"id":1,"content":"BTC to the moon","author":{"handle":"@a","name":"A"}},{"id":"1883","content":"rekt"}]}`,
		},
		{name: "empty collection", data: `{"tweets":[]}`},
		{name: "missing tweets key", data: `{"items":[]}`, pointer: "/", keyword: "required"},
		{name: "empty content", data: `{"tweets":[{"id":1,"content":""}]}`, pointer: "/tweets/0/content", keyword: "minLength"},
		{name: "boolean id", data: `{"tweets":[{"id":true,"content":"gm"}]}`, pointer: "/tweets/0/id", keyword: "type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), SchemaTweets)
			if tt.pointer == "" {
				assert.NoError(t, err)
				return
			}
			var schemaErr *Error
			require.ErrorAs(t, err, &schemaErr)
			assert.Equal(t, SchemaTweets, schemaErr.Schema)
			assert.Contains(t, schemaErr.Problems, Problem{Pointer: tt.pointer, Keyword: tt.keyword})
			assert.Contains(t, err.Error(), tt.pointer)
		})
	}
}

func TestValidateBytes_InvalidJSON(t *testing.T) {
	err := NewSchemaValidator().ValidateBytes([]byte(`{"tweets": }`), SchemaTweets)

	require.Error(t, err)
	var schemaErr *Error
	assert.False(t, errors.As(err, &schemaErr))
	assert.Contains(t, err.Error(), "parse tweets document")
}

func TestValidateBytes_UnknownSchema(t *testing.T) {
	err := NewSchemaValidator().ValidateBytes([]byte(`{}`), "walrus")
	assert.ErrorIs(t, err, ErrUnknownSchema)
}

func TestBundledSchemasCompile(t *testing.T) {
	schemas, err := compileBundled()
	require.NoError(t, err)
	assert.Contains(t, schemas, SchemaTweets)
}
