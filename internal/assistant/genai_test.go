package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/genai"
)

func TestGenaiRoleMapping(t *testing.T) {
	assert.Equal(t, genai.Role(genai.RoleModel), genaiRole(RoleAssistant))
	assert.Equal(t, genai.Role(genai.RoleUser), genaiRole(RoleUser))

	// unknown roles fall back to the user side of the exchange
	assert.Equal(t, genai.Role(genai.RoleUser), genaiRole("moderator"))
}

func TestNewGenAIRequiresAPIKey(t *testing.T) {
	_, err := NewGenAI("", "")
	assert.Error(t, err)
}
