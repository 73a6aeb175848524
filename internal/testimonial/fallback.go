package testimonial

// FallbackTestimonials is served on the public endpoint when the store
// is unreachable.
func FallbackTestimonials(featuredOnly bool) []*Testimonial {
	all := []*Testimonial{
		{
			ID:            "fallback-claire",
			ClientName:    "Claire Hudson",
			ClientRole:    "Founder",
			ClientCompany: "Hudson Interiors",
			Content:       "My assistant took over scheduling and invoicing within a week. I got my evenings back.",
			Rating:        5,
			IsApproved:    true,
			IsFeatured:    true,
		},
		{
			ID:            "fallback-marcus",
			ClientName:    "Marcus Webb",
			ClientRole:    "Managing Partner",
			ClientCompany: "Webb Legal",
			Content:       "Responsive, organized and proactive. The inbox triage alone is worth it.",
			Rating:        5,
			IsApproved:    true,
			IsFeatured:    true,
		},
		{
			ID:         "fallback-priya",
			ClientName: "Priya Nair",
			ClientRole: "Consultant",
			Content:    "Project coordination was seamless from kickoff to delivery.",
			Rating:     4,
			IsApproved: true,
		},
	}
	if !featuredOnly {
		return all
	}
	var featured []*Testimonial
	for _, t := range all {
		if t.IsFeatured {
			featured = append(featured, t)
		}
	}
	return featured
}
