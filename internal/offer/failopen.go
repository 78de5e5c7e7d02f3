package offer

// failOpen runs pass over offers. If pass panics, offers are returned
// unchanged so a data glitch never hides every result.
func failOpen(offers []NormalizedOffer, pass func([]NormalizedOffer) []NormalizedOffer) (out []NormalizedOffer) {
	defer func() {
		if r := recover(); r != nil {
			out = offers
		}
	}()
	return pass(offers)
}
