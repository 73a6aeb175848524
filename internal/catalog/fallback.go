package catalog

// FallbackServices is served on the public endpoint when the store is
// unreachable. Marketing content prefers availability over freshness.
func FallbackServices() []*Service {
	return []*Service{
		{
			ID:               "fallback-executive-assistant",
			Name:             "Executive Assistant",
			Slug:             "executive-assistant",
			Description:      "Dedicated executive support covering calendar management, travel planning, meeting preparation and correspondence.",
			ShortDescription: "Calendar, travel and inbox management for busy executives.",
			PricingMin:       25,
			PricingMax:       45,
			PricingType:      PricingHourly,
			Features:         []string{"Calendar management", "Travel planning", "Inbox triage", "Meeting notes"},
			IsActive:         true,
			SortOrder:        1,
		},
		{
			ID:               "fallback-social-media",
			Name:             "Social Media Management",
			Slug:             "social-media-management",
			Description:      "End-to-end social media support including content scheduling, community engagement and monthly performance reports.",
			ShortDescription: "Content scheduling and community engagement across your channels.",
			PricingMin:       800,
			PricingMax:       2000,
			PricingType:      PricingMonthly,
			Features:         []string{"Content calendar", "Post scheduling", "Community replies", "Monthly reporting"},
			IsActive:         true,
			SortOrder:        2,
		},
		{
			ID:               "fallback-bookkeeping",
			Name:             "Bookkeeping Support",
			Slug:             "bookkeeping-support",
			Description:      "Ongoing bookkeeping assistance covering invoicing, expense tracking, reconciliation and reporting handoff to your accountant.",
			ShortDescription: "Invoicing, expense tracking and reconciliation support.",
			PricingMin:       500,
			PricingMax:       1500,
			PricingType:      PricingMonthly,
			Features:         []string{"Invoicing", "Expense tracking", "Reconciliation", "Accountant handoff"},
			IsActive:         true,
			SortOrder:        3,
		},
		{
			ID:               "fallback-project-coordination",
			Name:             "Project Coordination",
			Slug:             "project-coordination",
			Description:      "Per-project coordination of timelines, vendors and deliverables so your initiatives land on schedule.",
			ShortDescription: "Timeline, vendor and deliverable coordination per project.",
			PricingMin:       1200,
			PricingMax:       6000,
			PricingType:      PricingProject,
			Features:         []string{"Timeline tracking", "Vendor coordination", "Status updates", "Deliverable review"},
			IsActive:         true,
			SortOrder:        4,
		},
	}
}
