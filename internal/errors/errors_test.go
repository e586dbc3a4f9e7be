package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/rpg-abilities/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "combatant not found",
			expected: "NOT_FOUND: combatant not found",
		},
		{
			name:     "out of range error",
			code:     errors.CodeOutOfRange,
			message:  "energy would drop below zero",
			expected: "OUT_OF_RANGE: energy would drop below zero",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
		})
	}
}

func (s *ErrorsTestSuite) TestWrapKeepsCode() {
	base := errors.NotFound("loadout not found").WithMeta("entity_id", "e-1")
	wrapped := errors.Wrap(base, "failed to restore loadout")

	s.Equal(errors.CodeNotFound, wrapped.Code)
	s.Equal("e-1", wrapped.Meta["entity_id"])
	s.True(errors.IsNotFound(wrapped))
	s.ErrorIs(wrapped, errors.NotFound(""))
}

func (s *ErrorsTestSuite) TestWrapForeignError() {
	base := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(base, "failed to load loadout")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal(base, wrapped.Unwrap())
	s.Nil(errors.Wrap(nil, "nothing"))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	base := errors.OutOfRangef("energy %d below zero", -5).WithMeta("delta", -20)
	wrapped := errors.WrapWithCode(base, errors.CodeResourceExhausted, "not enough energy")

	s.Equal(errors.CodeResourceExhausted, wrapped.Code)
	s.Equal(-20, wrapped.Meta["delta"])
}

func (s *ErrorsTestSuite) TestGRPCRoundTrip() {
	original := errors.FailedPrecondition("item is not a tool").WithMeta("item_id", "apple")

	grpcErr := errors.ToGRPCError(original)
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Equal(codes.FailedPrecondition, st.Code())
	s.Equal("item is not a tool", st.Message())

	back := errors.FromGRPCError(grpcErr)
	s.Equal(errors.CodeFailedPrecondition, errors.GetCode(back))
	s.Equal("apple", errors.GetMeta(back)["item_id"])
}

func (s *ErrorsTestSuite) TestToGRPCErrorForeign() {
	grpcErr := errors.ToGRPCError(fmt.Errorf("boom"))
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Equal(codes.Internal, st.Code())
	s.Nil(errors.ToGRPCError(nil))
}

func (s *ErrorsTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	s.NoError(vb.Build())

	vb.RequiredField("Engine")
	errors.ValidateRequired("entity_id", "  ", vb)
	errors.ValidateRange("slot", 9, 1, 5, vb)

	err := vb.Build()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Equal(
		"INVALID_ARGUMENT: validation failed: Engine: is required; entity_id: is required; slot: must be between 1 and 5",
		err.Error(),
	)
}
