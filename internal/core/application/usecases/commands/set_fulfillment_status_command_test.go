package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSetFulfillmentStatusCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewSetFulfillmentStatusCommand(mustID(4), fulfillment.InProgress)
	require.NoError(t, err)
	assert.Equal(t, int64(4), cmd.FulfillmentID().Int64())
	assert.Equal(t, fulfillment.InProgress, cmd.Status())
}

func TestNewSetFulfillmentStatusCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewSetFulfillmentStatusCommand(kernel.ID{}, fulfillment.UnknownStatus)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestSetFulfillmentStatusCommand_NotConstructedViaConstructor(t *testing.T) {
	cmd := commands.SetFulfillmentStatusCommand{}
	assert.ErrorIs(t, cmd.Validate(), commands.ErrSetFulfillmentStatusCommandIsNotConstructed)
}

func TestSetFulfillmentStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewSetFulfillmentStatusCommand(mustID(1), fulfillment.Initialized)

	repo := new(MockFulfillmentRepository)
	repo.On("SetStatus", ctx, mustID(1), fulfillment.Initialized).Return(nil).Once()
	factory := new(MockRepoFactory)
	factory.On("FulfillmentRepository").Return(repo).Once()

	h := commands.NewSetFulfillmentStatusCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
}

// The handler forwards illegal transitions instead of rejecting them itself;
// only the store knows the status at write time.
func TestSetFulfillmentStatusCommandHandler_Handle_PassesBadInputThrough(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewSetFulfillmentStatusCommand(mustID(1), fulfillment.Fulfilled)

	repo := new(MockFulfillmentRepository)
	repo.On("SetStatus", ctx, mustID(1), fulfillment.Fulfilled).
		Return(errs.NewBadInputError("bad fulfillment status transition")).Once()
	factory := new(MockRepoFactory)
	factory.On("FulfillmentRepository").Return(repo).Once()

	h := commands.NewSetFulfillmentStatusCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrBadInput)
	repo.AssertNumberOfCalls(t, "SetStatus", 1)
}

func TestSetFulfillmentStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockRepoFactory)
	h := commands.NewSetFulfillmentStatusCommandHandler(factory)

	err := h.Handle(t.Context(), commands.SetFulfillmentStatusCommand{})

	require.ErrorIs(t, err, commands.ErrSetFulfillmentStatusCommandIsNotConstructed)
	factory.AssertNotCalled(t, "FulfillmentRepository")
}
