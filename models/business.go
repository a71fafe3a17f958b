package models

import (
	"fleetforge-server/utils"
)

// BusinessInfo is the static contact configuration surfaced across the
// site. These values are configuration, not computed.
type BusinessInfo struct {
	Phone        string   `json:"phone"`
	PhoneLink    string   `json:"phone_link"`
	Email        string   `json:"email"`
	Website      string   `json:"website"`
	Hours        string   `json:"hours"`
	ServiceAreas []string `json:"service_areas"`
}

// ServiceOffering is one of the service categories the shop advertises.
type ServiceOffering struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Items       []string `json:"items"`
}

// Business holds the contact details for FleetForge Mobile Truck Repair.
var Business = BusinessInfo{
	Phone:     "(571) 206-2249",
	PhoneLink: utils.TelLink("(571) 206-2249"),
	Email:     "info@fleetforgetrucks.com",
	Website:   "https://fleetforgetrucks.com",
	Hours:     "Mon-Sun: 7:00 AM - 9:00 PM",
	ServiceAreas: []string{
		"Ashburn", "Sterling", "Leesburg", "Herndon", "Reston", "Chantilly",
		"Fairfax", "Tysons", "Alexandria", "Arlington", "Manassas", "Woodbridge",
	},
}

// ServiceOfferings lists what the mobile units handle on-site.
var ServiceOfferings = []ServiceOffering{
	{
		Title:       "Diagnostics & Minor Repairs",
		Description: "On-site troubleshooting and repairs to get you back on the road.",
		Items: []string{
			"Electrical system diagnostics",
			"Check engine light diagnosis",
			"Brake inspections and adjustments",
			"Air system troubleshooting",
			"Basic mechanical repairs",
			"Lighting and wiring fixes",
		},
	},
	{
		Title:       "Preventative Maintenance (PM)",
		Description: "Keep your fleet compliant and running efficiently.",
		Items: []string{
			"Oil and filter changes",
			"Fuel filter replacement",
			"Air filter service",
			"DOT inspections",
			"Fluid level checks and top-offs",
			"Belt and hose inspections",
		},
	},
	{
		Title:       "Detailing Services",
		Description: "Professional cleaning to maintain your fleet's image.",
		Items: []string{
			"Exterior truck wash",
			"Interior cab cleaning",
			"Trailer washouts",
			"Engine bay degreasing",
			"Aluminum polishing",
			"Chrome detailing",
		},
	},
	{
		Title:       "Parts Sourcing",
		Description: "Quality parts delivered fast with VIN-accurate matching.",
		Items: []string{
			"OEM parts sourcing",
			"Aftermarket alternatives",
			"Hard-to-find parts",
			"VIN-based part matching",
			"Same-day availability",
			"Competitive pricing",
		},
	},
}
