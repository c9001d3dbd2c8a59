package service

// DefaultServices returns the built-in catalog for the e-commerce demo.
// The order is significant: it is the order services are installed,
// tested, and reported in.
func DefaultServices() []Service {
	return []Service{
		{
			Name:      "payment-gateway",
			Title:     "Payment Gateway Service",
			Directory: "payment-gateway",
			Python:    "3.10.13",
			Requirements: []string{
				"flask==2.0.3",
				"sqlalchemy==1.4.46",
				"pytest==7.0.1",
			},
			Port:   5001,
			Runner: "pytest",
		},
		{
			Name:      "ml-fraud-detection",
			Title:     "ML Fraud Detection Service",
			Directory: "ml-fraud-detection",
			Python:    "3.10.13",
			Requirements: []string{
				"flask==2.0.3",
				"numpy==1.21.6",
				"scikit-learn==1.0.2",
				"pytest==7.0.1",
			},
			Port:   5002,
			Runner: "pytest",
		},
		{
			Name:      "inventory-api",
			Title:     "Inventory API Service",
			Directory: "inventory-api",
			Python:    "3.10.13",
			Requirements: []string{
				"flask==2.0.3",
				"pytest==7.0.1",
			},
			Port:   5003,
			Runner: "pytest",
		},
		{
			Name:      "analytics-processor",
			Title:     "Analytics Processor Service",
			Directory: "analytics-processor",
			Python:    "3.10.13",
			Requirements: []string{
				"flask==2.0.3",
				"pandas==1.3.5",
				"pytest==7.0.1",
			},
			Port:   5004,
			Runner: "pytest",
		},
	}
}
