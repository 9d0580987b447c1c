package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	require.NotNil(t, c)

	assert.Equal(t, "curl", DefaultLanguage())
	assert.Equal(t, "GET", DefaultMethod())
	assert.Equal(t, []string{"GET", "POST", "PUT", "PATCH", "DELETE"}, Methods())
	assert.Contains(t, LanguageNames(), "python")
}

func TestIsLanguage(t *testing.T) {
	assert.True(t, IsLanguage("go"))
	assert.False(t, IsLanguage("cobol"))
	assert.False(t, IsLanguage(""))
}

func TestIsMethod(t *testing.T) {
	assert.True(t, IsMethod("PATCH"))
	assert.False(t, IsMethod("get"))
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:  "valid",
			input: "languages:\n  - name: go\n    label: Go\nmethods: [GET]\n",
		},
		{
			name:    "no languages",
			input:   "methods: [GET]\n",
			wantErr: "no languages",
		},
		{
			name:    "no methods",
			input:   "languages:\n  - name: go\n",
			wantErr: "no methods",
		},
		{
			name:    "unnamed language",
			input:   "languages:\n  - label: Go\nmethods: [GET]\n",
			wantErr: "has no name",
		},
		{
			name:    "malformed",
			input:   "languages: [",
			wantErr: "decode catalog",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse([]byte(tt.input))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "go", c.Languages[0].Name)
		})
	}
}
