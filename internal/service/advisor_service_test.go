package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"onyx/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type fakeCompleter struct {
	reply      string
	err        error
	lastPrompt string
}

func (f *fakeCompleter) Complete(_ context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	return f.reply, f.err
}

type AdvisorServiceTestSuite struct {
	suite.Suite
	llm *fakeCompleter
	svc *AdvisorService
}

func (suite *AdvisorServiceTestSuite) SetupTest() {
	suite.llm = &fakeCompleter{reply: "Spend less on coffee."}
	suite.svc = NewAdvisorService(suite.llm, &config.AdvisorConfig{Persona: "a frugal mentor"}, zap.NewNop())
}

func (suite *AdvisorServiceTestSuite) TestPersonaPromptShape() {
	reply := suite.svc.Respond(context.Background(), "How do I save more?", "Warren", true)

	assert.Equal(suite.T(), "Spend less on coffee.", reply)
	assert.Equal(suite.T(), "You are Warren. Keep it short.\nUser: How do I save more?", suite.llm.lastPrompt)
}

func (suite *AdvisorServiceTestSuite) TestPersonaDisabled() {
	suite.svc.Respond(context.Background(), "Hello", "Warren", false)

	assert.True(suite.T(), strings.HasPrefix(suite.llm.lastPrompt, "You are a helpful assistant."))
	assert.NotContains(suite.T(), suite.llm.lastPrompt, "Warren")
}

func (suite *AdvisorServiceTestSuite) TestDefaultPersonaWhenEmpty() {
	suite.svc.Respond(context.Background(), "Hello", "", true)

	assert.Contains(suite.T(), suite.llm.lastPrompt, "You are a frugal mentor.")
}

func (suite *AdvisorServiceTestSuite) TestFailureBecomesSystemErrorReply() {
	suite.llm.err = errors.New("model unavailable")

	reply := suite.svc.Respond(context.Background(), "Hello", "", true)

	assert.True(suite.T(), strings.HasPrefix(reply, "System Error: "))
	assert.Contains(suite.T(), reply, "model unavailable")
	assert.True(suite.T(), strings.HasSuffix(reply, ". Please try again later."))
}

func TestAdvisorServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AdvisorServiceTestSuite))
}
