package pilots

// SampleListings returns the built-in catalog served when no database is configured and
// written by cmd/seed.
func SampleListings() []PilotListing {
	return []PilotListing{
		{
			ID:          1,
			Company:     "PayFlow",
			Website:     "payflow.io",
			Problem:     "Payment teams need real-time fraud detection without increasing decline rates.",
			Title:       "Real-time fraud scoring for high-velocity payments",
			Impact:      "Reduce fraud by 40% while maintaining 99%+ approval rates for legitimate transactions",
			Duration:    Days60,
			Success:     []string{"Process 10k+ transactions", "Measure false positive rate", "Compare vs baseline"},
			Integration: IntegrationAPI,
			Risk:        RiskMedium,
			Incentive:   "Free + Revenue share",
			Category:    CategoryRiskCompliance,
			Team:        "Ex-Stripe, Plaid engineers",
			Users:       "12 fintech companies",
			Exclusions:  []string{"No PII required", "No production write access", "Read-only API access"},
			Readiness: Readiness{
				SandboxAvailable:        true,
				SecurityReviewCompleted: true,
				IntegrationDocsReady:    true,
				SupportSLA:              "24h response",
			},
		},
		{
			ID:          2,
			Company:     "DevTrace",
			Website:     "devtrace.dev",
			Problem:     "Infrastructure teams lack visibility into microservice performance degradation before incidents.",
			Title:       "Predictive performance monitoring for microservices",
			Impact:      "Prevent 80% of performance incidents through early detection",
			Duration:    Days60,
			Success:     []string{"Deploy to 3+ services", "Detect degradation 15min+ early", "Zero false alerts"},
			Integration: IntegrationSDK,
			Risk:        RiskLow,
			Incentive:   "Free for 6 months",
			Category:    CategoryAnalytics,
			Team:        "Ex-Datadog, New Relic",
			Users:       "8 YC companies",
			Exclusions:  []string{"No data leaves your VPC", "No customer-facing changes", "Zero downtime deployment"},
			Readiness: Readiness{
				SandboxAvailable:        true,
				SecurityReviewCompleted: false,
				IntegrationDocsReady:    true,
				SupportSLA:              "48h response",
			},
		},
		{
			ID:          3,
			Company:     "ChainGuard",
			Website:     "chainguard.xyz",
			Problem:     "Web3 teams need automated smart contract monitoring without hiring security engineers.",
			Title:       "Automated security monitoring for DeFi protocols",
			Impact:      "Detect vulnerabilities 48hrs before exploitation with zero manual review",
			Duration:    Days90,
			Success:     []string{"Monitor 5+ contracts", "Identify 1+ critical issue", "Sub-5min alert time"},
			Integration: IntegrationAPI,
			Risk:        RiskHigh,
			Incentive:   "Co-build + Equity",
			Category:    CategoryWalletPayments,
			Team:        "Trail of Bits alumni",
			Users:       "Backed by a16z crypto",
			Exclusions:  []string{"No private key access", "Read-only blockchain data", "No transaction signing"},
			Readiness: Readiness{
				SandboxAvailable:        true,
				SecurityReviewCompleted: true,
				IntegrationDocsReady:    true,
				SupportSLA:              "12h response",
			},
		},
	}
}
