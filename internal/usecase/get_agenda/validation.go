package get_agenda

import "fmt"

func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	switch req.View {
	case "", ViewDesktop, ViewMobile:
		return nil
	default:
		return fmt.Errorf("%w: unknown view %q", ErrInvalidInput, req.View)
	}
}
