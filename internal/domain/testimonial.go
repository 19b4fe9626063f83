package domain

// Testimonial is a guest review snapshot from the backend. Pagination is
// server-side; page numbers and totals are trusted as-is.
type Testimonial struct {
	ID            string `json:"id"`
	Author        string `json:"author"`
	Avatar        string `json:"avatar,omitempty"`
	Date          string `json:"date"`
	Message       string `json:"message"`
	Accommodation string `json:"accommodation,omitempty"`
}

type TestimonialsPage struct {
	Items       []Testimonial `json:"testimonials"`
	Total       int           `json:"total"`
	Pages       int           `json:"pages"`
	CurrentPage int           `json:"current_page"`
}

// EmptyTestimonialsPage is what read-failure degrades to: no items, one page.
func EmptyTestimonialsPage() TestimonialsPage {
	return TestimonialsPage{Items: []Testimonial{}, Total: 0, Pages: 1, CurrentPage: 1}
}
