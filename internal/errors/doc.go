// Package errors provides the structured error type used across rpg-abilities.
//
// Errors carry a Code, a user facing message, an optional cause and metadata:
//
//	err := errors.NotFoundf("combatant %s not found", entityID).
//	    WithMeta("entity_id", entityID)
//
// Wrapping keeps the original code so a repository NotFound stays NotFound
// after the orchestrator adds context:
//
//	if _, err := o.loadoutRepo.Get(ctx, input); err != nil {
//	    return nil, errors.Wrap(err, "failed to restore loadout")
//	}
//
// Use WrapWithCode when a lower layer error changes meaning, for example a
// ledger underflow surfacing as a resource problem.
//
// # Layer Guidelines
//
// Entities and the engine return InvalidArgument, OutOfRange and
// FailedPrecondition. Gate failures are never errors: the engine reports them
// as a false admission. Repositories return NotFound and wrap storage failures
// as Internal. Handlers convert with ToGRPCError before returning.
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Engine == nil {
//	    vb.RequiredField("Engine")
//	}
//	return vb.Build()
package errors
