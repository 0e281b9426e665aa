package view

import "github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/domain"

type TestimonialCard struct {
	ClientName string
	Byline     string
	Text       string
}

// TestimonialSlot is one visual card holding one or two testimonials.
type TestimonialSlot struct {
	Cards []TestimonialCard
}

// PairTestimonials groups testimonials two per slot in list order. An odd
// final testimonial gets a slot of its own.
func PairTestimonials(items []domain.Testimonial) []TestimonialSlot {
	slots := make([]TestimonialSlot, 0, (len(items)+1)/2)
	for i := 0; i < len(items); i += 2 {
		end := i + 2
		if end > len(items) {
			end = len(items)
		}

		slot := TestimonialSlot{Cards: make([]TestimonialCard, 0, end-i)}
		for _, t := range items[i:end] {
			slot.Cards = append(slot.Cards, TestimonialCard{
				ClientName: t.ClientName,
				Byline:     byline(t.ClientPosition, t.ClientCompany),
				Text:       t.TestimonialText,
			})
		}
		slots = append(slots, slot)
	}
	return slots
}

func byline(position, company *string) string {
	out := orDefault(position, "")
	if company != nil && *company != "" {
		if out == "" {
			return *company
		}
		out += " at " + *company
	}
	return out
}
