package navigation

import (
	"strconv"
)

// State tracks the pending count buffer, the current page and the number of
// slides in the deck.
type State struct {
	Buffer      string
	Page        int
	TotalSlides int
}

// Navigate receives the current State and a key press and returns the new
// State. Digits typed before a movement key repeat it; digits followed by G
// jump to that slide.
func Navigate(state State, keyPress string) State {
	switch keyPress {
	case "g":
		if state.Buffer == "g" {
			return State{Page: 0, TotalSlides: state.TotalSlides}
		}
		return State{Buffer: "g", Page: state.Page, TotalSlides: state.TotalSlides}

	case "G":
		page := state.TotalSlides - 1
		if n, err := strconv.Atoi(state.Buffer); err == nil {
			page = n - 1
		}
		return State{Page: clamp(page, state.TotalSlides), TotalSlides: state.TotalSlides}

	case " ", "down", "j", "right", "l", "enter", "n", "pgdown":
		return State{Page: clamp(state.Page+repeat(state.Buffer), state.TotalSlides), TotalSlides: state.TotalSlides}

	case "up", "k", "left", "h", "p", "pgup", "N":
		return State{Page: clamp(state.Page-repeat(state.Buffer), state.TotalSlides), TotalSlides: state.TotalSlides}

	default:
		if _, err := strconv.Atoi(keyPress); err == nil && len(keyPress) == 1 {
			buffer := state.Buffer
			if buffer == "g" {
				buffer = ""
			}
			return State{Buffer: buffer + keyPress, Page: state.Page, TotalSlides: state.TotalSlides}
		}
	}

	return State{Page: state.Page, TotalSlides: state.TotalSlides}
}

func repeat(buffer string) int {
	n, err := strconv.Atoi(buffer)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func clamp(page int, total int) int {
	if page >= total {
		page = total - 1
	}
	if page < 0 {
		page = 0
	}
	return page
}
