package assistant_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"medlink/internal/assistant"
	"medlink/internal/assistant/mocks"
	"medlink/pkg/errors"
)

func newTestService(t *testing.T) (assistant.Service, *mocks.MockGateway, *mocks.MockConversationStore) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)
	store := mocks.NewMockConversationStore(ctrl)
	svc := assistant.NewService(gw, store, zap.NewNop())
	return svc, gw, store
}

func TestConverseAppendsBothTurns(t *testing.T) {
	svc, gw, store := newTestService(t)
	ctx := context.Background()

	existing := []assistant.Turn{
		{Role: assistant.RoleUser, Content: "hello"},
		{Role: assistant.RoleAssistant, Content: "Hello, doctor."},
	}

	store.EXPECT().Load(ctx, "user-1").Return(existing, nil)
	gw.EXPECT().Reply(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, history []assistant.Turn) (string, error) {
			require.Len(t, history, 3)
			assert.Equal(t, "how do I wind down after nights?", history[2].Content)
			return "Try keeping the last hour before bed screen-free.", nil
		})
	store.EXPECT().Save(ctx, "user-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, turns []assistant.Turn) error {
			require.Len(t, turns, 4)
			assert.Equal(t, assistant.RoleAssistant, turns[3].Role)
			assert.Equal(t, "Try keeping the last hour before bed screen-free.", turns[3].Content)
			return nil
		})

	reply, err := svc.Converse(ctx, "user-1", "how do I wind down after nights?")
	require.NoError(t, err)
	assert.Equal(t, "Try keeping the last hour before bed screen-free.", reply)
}

func TestConverseRejectsEmptyMessage(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Converse(context.Background(), "user-1", "   ")
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidArgument, errors.CodeOf(err))
}

func TestConverseSurvivesSaveFailure(t *testing.T) {
	svc, gw, store := newTestService(t)
	ctx := context.Background()

	store.EXPECT().Load(ctx, "user-1").Return(nil, nil)
	gw.EXPECT().Reply(ctx, gomock.Any()).Return("I hear you.", nil)
	store.EXPECT().Save(ctx, "user-1", gomock.Any()).Return(assert.AnError)

	reply, err := svc.Converse(ctx, "user-1", "hello")
	require.NoError(t, err)
	assert.Equal(t, "I hear you.", reply)
}

func TestConverseGatewayFailure(t *testing.T) {
	svc, gw, store := newTestService(t)
	ctx := context.Background()

	store.EXPECT().Load(ctx, "user-1").Return(nil, nil)
	gw.EXPECT().Reply(ctx, gomock.Any()).Return("", assert.AnError)

	_, err := svc.Converse(ctx, "user-1", "hello")
	require.Error(t, err)
	assert.Equal(t, errors.CodeInternal, errors.CodeOf(err))
}

func TestTranscribePassthrough(t *testing.T) {
	svc, gw, _ := newTestService(t)
	ctx := context.Background()

	gw.EXPECT().Transcribe(ctx, []byte("audio")).Return("feeling worn down", nil)

	text, err := svc.Transcribe(ctx, []byte("audio"))
	require.NoError(t, err)
	assert.Equal(t, "feeling worn down", text)

	_, err = svc.Transcribe(ctx, nil)
	assert.Equal(t, errors.CodeInvalidArgument, errors.CodeOf(err))
}
