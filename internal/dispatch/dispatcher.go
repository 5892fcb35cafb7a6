// Package dispatch resolves a target-account selector and fans a read-only
// operation out across one or more Stripe accounts with per-account failure
// isolation.
package dispatch

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/revops-tools/stripe-mcp/internal/config"
	apperrors "github.com/revops-tools/stripe-mcp/internal/errors"
	"github.com/revops-tools/stripe-mcp/internal/logging"
	"github.com/revops-tools/stripe-mcp/internal/stripe"
)

// AllAccounts is the selector value that fans an operation out to every
// registered account.
const AllAccounts = "all"

// Operation is one read-only unit of work executed against a single
// account's client. Stateless: the same operation runs once per target
// account.
type Operation func(ctx context.Context, client stripe.StripeClient) (*OperationResult, error)

// OperationResult is what an operation reports on success
type OperationResult struct {
	Data     interface{}
	Message  string
	HasMore  bool
	NextPage string
}

// Outcome is the per-account result record produced by one dispatch.
// Created once per (account, dispatch) pair and never mutated afterwards.
type Outcome struct {
	AccountName string
	Success     bool
	Message     string
	Data        interface{}
	HasMore     bool
	NextPage    string
}

// Dispatcher fans operations out across accounts. Execution is strictly
// sequential in registry order: deterministic output, simple failure
// isolation, and no concurrency pressure against the Stripe API.
type Dispatcher struct {
	registry *config.AccountRegistry
	factory  stripe.ClientFactory
	logger   *logging.Logger
}

// New creates a dispatcher over a credential registry and client factory
func New(registry *config.AccountRegistry, factory stripe.ClientFactory) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		factory:  factory,
		logger:   logging.GetLogger(),
	}
}

// Execute resolves the account selector and runs the operation once per
// target account. It is total for well-formed input: every path returns a
// sequence of outcomes, never an error, and one account's failure never
// aborts its siblings or the caller.
func (d *Dispatcher) Execute(ctx context.Context, account string, op Operation) []Outcome {
	dispatchID := uuid.NewString()

	switch {
	case d.registry.Has(account):
		return []Outcome{d.executeForAccount(ctx, dispatchID, account, op)}

	case account == AllAccounts:
		names := d.registry.Names()
		outcomes := make([]Outcome, 0, len(names))
		for _, name := range names {
			outcomes = append(outcomes, d.executeForAccount(ctx, dispatchID, name, op))
		}
		return outcomes

	default:
		// Unknown selector: synthetic failure, the operation never runs
		return []Outcome{d.unknownAccountOutcome(account)}
	}
}

// executeForAccount runs the operation against one account, converting any
// failure (client construction, operation error, panic) into a failed
// outcome. Panics are recovered here so that a defect in one account's call
// path cannot take down the rest of the batch.
func (d *Dispatcher) executeForAccount(ctx context.Context, dispatchID, account string, op Operation) (outcome Outcome) {
	outcome = Outcome{AccountName: account}

	defer func() {
		if r := recover(); r != nil {
			msg := apperrors.Message(r)
			d.logger.AccountError(account, "Operation panicked", fmt.Errorf("%s", msg),
				zap.String("dispatch_id", dispatchID))
			outcome = Outcome{AccountName: account, Success: false, Message: msg}
		}
	}()

	d.logger.AccountInfo(account, "Executing operation", zap.String("dispatch_id", dispatchID))

	client, err := d.factory.ClientFor(account)
	if err != nil {
		d.logger.AccountError(account, "Client construction failed", err,
			zap.String("dispatch_id", dispatchID))
		return Outcome{AccountName: account, Success: false, Message: apperrors.Message(err)}
	}

	result, err := op(ctx, client)
	if err != nil {
		d.logger.AccountError(account, "Operation failed", err,
			zap.String("dispatch_id", dispatchID))
		return Outcome{AccountName: account, Success: false, Message: apperrors.Message(err)}
	}

	return Outcome{
		AccountName: account,
		Success:     true,
		Message:     result.Message,
		Data:        result.Data,
		HasMore:     result.HasMore,
		NextPage:    result.NextPage,
	}
}

// unknownAccountOutcome names the literal invalid selector and enumerates the
// accounts that are currently available.
func (d *Dispatcher) unknownAccountOutcome(account string) Outcome {
	selector := account
	if selector == "" {
		selector = "(not set)"
	}

	var message string
	if d.registry.Len() == 0 {
		message = fmt.Sprintf("Account '%s' not found. No accounts are currently configured.", selector)
	} else {
		message = fmt.Sprintf("Account '%s' not found. Available accounts: %s",
			selector, strings.Join(d.registry.Names(), ", "))
	}

	return Outcome{AccountName: selector, Success: false, Message: message}
}
