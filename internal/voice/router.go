// Package voice maps recognized Spanish command text to application
// actions. It is stateless: recognition and synthesis engines live outside
// this process, which only sees text in and an action plus a spoken
// confirmation string out.
package voice

import "strings"

// Action identifies what the application should do with a command.
type Action string

// Actions.
const (
	ActionShowSales        Action = "navigate-to-sales"
	ActionShowInventory    Action = "navigate-to-inventory"
	ActionShowAppointments Action = "navigate-to-appointments"
	ActionShowBarber       Action = "navigate-to-barber"
	ActionShowCarWash      Action = "navigate-to-carwash"
	ActionGreet            Action = "greet"
	ActionUnrecognized     Action = "unrecognized"
)

// rule binds a set of trigger phrases to an action and its spoken reply.
type rule struct {
	phrases []string
	action  Action
	say     string
}

// rules are checked in order; the first phrase found as a substring wins,
// so ordering is the tie-break between overlapping phrases.
var rules = []rule{
	{[]string{"abrir ventas", "mostrar ventas"}, ActionShowSales, "Abriendo ventas"},
	{[]string{"abrir inventario", "mostrar inventario"}, ActionShowInventory, "Mostrando inventario"},
	{[]string{"crear cita"}, ActionShowAppointments, "Abriendo citas"},
	{[]string{"barbería", "barberia"}, ActionShowBarber, "Abriendo barbería"},
	{[]string{"car wash", "lavado"}, ActionShowCarWash, "Abriendo car wash"},
	{[]string{"hola", "buenos"}, ActionGreet, "Hola, ¿en qué te ayudo?"},
}

// unrecognizedReply is spoken when no rule matches.
const unrecognizedReply = "No entendí el comando"

// Route maps free-form command text to an action and the confirmation to
// speak. Matching is case-insensitive and substring-based.
func Route(text string) (Action, string) {
	text = strings.ToLower(text)
	for _, r := range rules {
		for _, phrase := range r.phrases {
			if strings.Contains(text, phrase) {
				return r.action, r.say
			}
		}
	}
	return ActionUnrecognized, unrecognizedReply
}
