package usecase

import "github.com/enercore/backoffice/internal/entity"

type Event string

const EventWelcoming Event = "welcoming"

type transitionKey struct {
	From  entity.ContractState
	Event Event
}

// The lifecycle transition table. welcoming is idempotent from check_contract:
// re-firing it resends the welcome notification without changing state.
var transitions = map[transitionKey]entity.ContractState{
	{entity.StateBackofficeAcquisition, EventWelcoming}: entity.StateCheckContract,
	{entity.StateCheckContract, EventWelcoming}:         entity.StateCheckContract,
}

// NextState resolves the target state for an event fired from a given state.
// ok is false when the table has no entry, meaning the event is rejected.
func NextState(from entity.ContractState, event Event) (entity.ContractState, bool) {
	to, ok := transitions[transitionKey{from, event}]
	return to, ok
}

// WelcomingGuard is the dependency check for the welcoming event: the customer
// must be reachable by mail and the contract must supply at least one point.
func WelcomingGuard(c *entity.Contract) bool {
	return c.Customer != nil && c.Customer.HasContactEmail() && len(c.Deliveries) > 0
}
