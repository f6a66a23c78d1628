package ideas

import "narrativeradar/internal/models"

// Catalog is the static build-idea lookup table. For returns nil for
// categories without authored ideas; callers omit the ideas block in that
// case.
type Catalog struct {
	byCategory map[string][]models.BuildIdea
}

func NewCatalog() *Catalog {
	return &Catalog{byCategory: templates}
}

// For returns up to five authored ideas for a category, or nil.
func (c *Catalog) For(category string) []models.BuildIdea {
	ideas := c.byCategory[category]
	if len(ideas) > 5 {
		ideas = ideas[:5]
	}
	return ideas
}

var templates = map[string][]models.BuildIdea{
	"ai_agents": {
		{
			Name:             "AI Portfolio Rebalancer",
			Description:      "An AI agent that monitors DeFi positions across Jupiter, Kamino, and Marinade, automatically rebalancing based on yield optimization and risk parameters. Uses Solana Agent Kit for transactions.",
			TechStack:        []string{"Solana Agent Kit", "Python", "LangChain", "Jupiter API", "Helius RPC"},
			Difficulty:       "intermediate",
			TimelineEstimate: "3-4 weeks",
			RevenueModel:     "0.1-0.5% management fee on AUM",
			WhyNow:           "ai16z proved autonomous trading is viable. Solana Agent Kit has 60+ pre-built actions. Market timing is perfect.",
		},
		{
			Name:             "Social Signal Trading Bot",
			Description:      "Agent that monitors KOL tweets, analyzes sentiment, and executes trades on pump.fun tokens within seconds of mention. Risk management built-in.",
			TechStack:        []string{"Eliza Framework", "Twitter API", "Pump.fun API", "Solana Web3.js"},
			Difficulty:       "advanced",
			TimelineEstimate: "4-6 weeks",
			RevenueModel:     "Performance fees on profitable trades",
			WhyNow:           "KOL signals move markets instantly. ai16z's Marc AIndreessen processes thousands of signals/second. First-mover advantage critical.",
		},
		{
			Name:             "AI-Powered NFT Valuation Agent",
			Description:      "Agent that appraises NFTs by analyzing floor prices, traits, historical sales, and social sentiment. Provides instant quotes and can execute arbitrage on underpriced listings.",
			TechStack:        []string{"Solana Agent Kit", "Magic Eden API", "Tensor API", "GPT-4 Vision"},
			Difficulty:       "intermediate",
			TimelineEstimate: "2-3 weeks",
			RevenueModel:     "Arbitrage profits + valuation API fees",
			WhyNow:           "NFT market recovering. Automated valuation needed for DeFi collateralization. No dominant player yet.",
		},
		{
			Name:             "Autonomous Grant Proposal Writer",
			Description:      "AI that scans Superteam, Solana Foundation, and DAO treasuries for grants, then generates and submits tailored proposals based on your project. Learns from successful proposals.",
			TechStack:        []string{"Claude API", "Notion API", "Solana Governance SDKs", "Python"},
			Difficulty:       "beginner",
			TimelineEstimate: "2 weeks",
			RevenueModel:     "% of grants won or subscription model",
			WhyNow:           "$100M+ in ecosystem grants available. Manual applications are time-consuming. AI can 10x application output.",
		},
		{
			Name:             "Multi-Agent Trading Swarm Orchestrator",
			Description:      "Platform for deploying and managing multiple specialized AI agents (trend-follower, arbitrageur, market-maker) that coordinate strategies. Dashboard for performance tracking.",
			TechStack:        []string{"Solana Agent Kit", "ElizaOS", "React", "PostgreSQL", "Jito MEV"},
			Difficulty:       "advanced",
			TimelineEstimate: "6-8 weeks",
			RevenueModel:     "SaaS subscription + performance fees",
			WhyNow:           "Single agents are commoditized. Swarm intelligence is the next evolution. ai16z proves coordination is possible.",
		},
	},
	"infrastructure": {
		{
			Name:             "Firedancer Node Dashboard",
			Description:      "Real-time monitoring dashboard for Firedancer validators showing TPS, latency, block production stats, and comparison with legacy validators. Alert system for anomalies.",
			TechStack:        []string{"React", "Helius RPC", "WebSocket", "Grafana", "Prometheus"},
			Difficulty:       "intermediate",
			TimelineEstimate: "3-4 weeks",
			RevenueModel:     "SaaS for validators ($50-200/mo)",
			WhyNow:           "Firedancer launching mid-2026. Validators need monitoring tools. First specialized dashboard wins market.",
		},
		{
			Name:             "ZK Compression Migration Tool",
			Description:      "One-click tool to migrate existing NFT collections and token accounts to compressed state. Calculates savings, handles migration, verifies integrity.",
			TechStack:        []string{"Light Protocol SDK", "Metaplex", "TypeScript", "React"},
			Difficulty:       "intermediate",
			TimelineEstimate: "4-5 weeks",
			RevenueModel:     "Per-migration fees or enterprise contracts",
			WhyNow:           "ZK Compression v2 is 1000x cheaper. Legacy collections need migration. Tooling gap is huge.",
		},
		{
			Name:             "Latency Arbitrage Detector",
			Description:      "Tool that identifies arbitrage opportunities created by Alpenglow's 150ms finality vs other chains. Alerts for cross-chain opportunities.",
			TechStack:        []string{"Rust", "Jito", "Cross-chain bridges", "WebSocket feeds"},
			Difficulty:       "advanced",
			TimelineEstimate: "6-8 weeks",
			RevenueModel:     "Arbitrage profits or API licensing",
			WhyNow:           "Alpenglow's 150ms finality creates new edge. CEX/DEX arb windows shrinking. Need specialized tools.",
		},
		{
			Name:             "Developer Onboarding Accelerator",
			Description:      "AI-powered tool that analyzes a dev's existing codebase and generates Solana program equivalents. Includes testing, deployment, and best practices.",
			TechStack:        []string{"Claude API", "Anchor", "TypeScript", "VS Code Extension"},
			Difficulty:       "intermediate",
			TimelineEstimate: "4-6 weeks",
			RevenueModel:     "SaaS subscription for agencies",
			WhyNow:           "17,700 developers and growing. 78% growth in builders. Onboarding is still painful. AI can accelerate.",
		},
	},
	"stablecoins_payfi": {
		{
			Name:             "AI Micropayment Orchestrator",
			Description:      "SDK for AI agents to make and receive USDC micropayments. Handles batching, streaming payments, and cost optimization for agent-to-agent commerce.",
			TechStack:        []string{"Solana Web3.js", "USDC SPL", "Helius", "TypeScript"},
			Difficulty:       "intermediate",
			TimelineEstimate: "3-4 weeks",
			RevenueModel:     "0.01% transaction fee at scale",
			WhyNow:           "Standard Chartered says micropayments are Solana's killer app. AI agents need payment rails. No standard exists.",
		},
		{
			Name:             "Cross-Border Remittance Tracker",
			Description:      "Consumer app showing real-time USDC/USDPT remittance status, exchange rates, and fees vs Western Union traditional. Integrates with Solana Pay.",
			TechStack:        []string{"React Native", "Solana Pay", "Circle API", "Maps API"},
			Difficulty:       "beginner",
			TimelineEstimate: "2-3 weeks",
			RevenueModel:     "Affiliate fees from payment providers",
			WhyNow:           "Western Union launching USDPT. $700B/year remittance market. Users need comparison tools.",
		},
		{
			Name:             "Stablecoin Yield Aggregator",
			Description:      "Auto-routing tool that finds best USDC yields across Kamino, Marginfi, and Orca. One-click deposit and rebalancing with risk scores.",
			TechStack:        []string{"Anchor", "Jupiter", "React", "Helius webhooks"},
			Difficulty:       "intermediate",
			TimelineEstimate: "4-5 weeks",
			RevenueModel:     "0.1% performance fee",
			WhyNow:           "$4.25B USDC on Solana. Yields vary 5-15% across platforms. Users want simplicity.",
		},
		{
			Name:             "Merchant Stablecoin Onramp",
			Description:      "Shopify plugin that lets merchants accept USDC with instant conversion to local currency. Dashboard for reconciliation and tax reporting.",
			TechStack:        []string{"Shopify SDK", "Solana Pay", "Circle API", "Node.js"},
			Difficulty:       "intermediate",
			TimelineEstimate: "4-6 weeks",
			RevenueModel:     "0.5% payment processing fee",
			WhyNow:           "Visa settlement on Solana. Merchants want crypto without volatility. Plugin market is underserved.",
		},
	},
	"rwa_tokenization": {
		{
			Name:             "RWA Portfolio Tracker",
			Description:      "Dashboard aggregating all tokenized stocks, bonds, and ETFs across Ondo, WisdomTree, xStocks. Shows P&L, dividends, and rebalancing suggestions.",
			TechStack:        []string{"React", "Ondo API", "Solana RPC", "TradingView charts"},
			Difficulty:       "beginner",
			TimelineEstimate: "2-3 weeks",
			RevenueModel:     "Premium features subscription",
			WhyNow:           "200+ Ondo assets on Solana. $1B+ RWA. No unified tracking tool. Users are fragmented.",
		},
		{
			Name:             "Tokenized Stock Fractionalizer",
			Description:      "Platform to buy fractional shares of tokenized stocks. Enable $1 minimum investments in Tesla, Apple via Ondo tokens.",
			TechStack:        []string{"Anchor", "Ondo SDK", "React", "KYC integration"},
			Difficulty:       "advanced",
			TimelineEstimate: "6-8 weeks",
			RevenueModel:     "0.25% trading fee",
			WhyNow:           "Tokenized equities up 2800%. Retail wants access. Fractionalization removes barriers.",
		},
		{
			Name:             "RWA Collateral Oracle",
			Description:      "Oracle providing real-time valuations of tokenized assets for DeFi lending protocols. Enables RWA-backed loans.",
			TechStack:        []string{"Switchboard", "Pyth", "Rust", "Price feeds"},
			Difficulty:       "advanced",
			TimelineEstimate: "5-7 weeks",
			RevenueModel:     "Oracle fees from protocols",
			WhyNow:           "DeFi needs RWA collateral. No reliable oracle for tokenized stocks. First mover captures protocol integrations.",
		},
		{
			Name:             "RWA to DeFi Bridge UI",
			Description:      "Simple interface to use tokenized bonds as collateral for USDC loans. Abstracts complexity of Ondo + lending protocol interaction.",
			TechStack:        []string{"React", "Ondo SDK", "Kamino SDK", "TypeScript"},
			Difficulty:       "intermediate",
			TimelineEstimate: "3-4 weeks",
			RevenueModel:     "Referral fees from protocols",
			WhyNow:           "Multiliquid just launched RWA redemption. Users want yield on idle assets. UX is currently terrible.",
		},
	},
	"mobile_consumer": {
		{
			Name:             "Seeker Rewards Aggregator",
			Description:      "App that combines all Seeker-exclusive airdrops, quests, and rewards. Push notifications for new opportunities. Leaderboard for top earners.",
			TechStack:        []string{"React Native", "Push notifications", "Solana Mobile SDK"},
			Difficulty:       "beginner",
			TimelineEstimate: "2-3 weeks",
			RevenueModel:     "Promoted rewards from projects",
			WhyNow:           "150K Seeker preorders. Hardware-gated airdrops are new. Users need discovery tool.",
		},
		{
			Name:             "Mobile-First DEX Experience",
			Description:      "Tinder-style token discovery for mobile. Swipe right to buy, left to pass. Optimized for Seeker's dApp store.",
			TechStack:        []string{"React Native", "Jupiter API", "Solana Mobile SDK", "Pump.fun API"},
			Difficulty:       "intermediate",
			TimelineEstimate: "3-4 weeks",
			RevenueModel:     "Trading fees affiliate",
			WhyNow:           "Mobile trading is clunky. Seeker users want native experience. Gamification increases engagement.",
		},
		{
			Name:             "Seed Vault Social Recovery",
			Description:      "Add social recovery to Seeker's Seed Vault. Trusted friends can help recover wallet without compromising security.",
			TechStack:        []string{"Solana Mobile SDK", "Shamir Secret Sharing", "React Native"},
			Difficulty:       "advanced",
			TimelineEstimate: "4-6 weeks",
			RevenueModel:     "Premium feature subscription",
			WhyNow:           "Hardware wallets lack recovery options. Social recovery proven on Ethereum. Seeker needs this.",
		},
	},
	"depin": {
		{
			Name:             "DePIN Yield Optimizer",
			Description:      "Dashboard comparing yields across Render, Helium, io.net, Nosana. Auto-allocates compute/bandwidth resources to highest paying network.",
			TechStack:        []string{"Python", "DePIN protocol APIs", "React", "GPU detection"},
			Difficulty:       "intermediate",
			TimelineEstimate: "4-5 weeks",
			RevenueModel:     "% of optimized yields",
			WhyNow:           "DePIN activity growing. Providers want max ROI on hardware. No unified optimization tool.",
		},
		{
			Name:             "Dawn Network Coverage Mapper",
			Description:      "Crowdsourced map showing Dawn Network bandwidth availability. Users can check coverage before contributing or buying.",
			TechStack:        []string{"React", "Mapbox", "Dawn API", "WebSocket"},
			Difficulty:       "beginner",
			TimelineEstimate: "2-3 weeks",
			RevenueModel:     "Ads or premium analytics",
			WhyNow:           "Dawn airdrop driving adoption. Coverage data is fragmented. Visual tool increases adoption.",
		},
		{
			Name:             "GPU Marketplace for AI Training",
			Description:      "Marketplace connecting GPU owners with AI developers needing compute. Escrow, SLA guarantees, performance benchmarking.",
			TechStack:        []string{"Anchor", "Render/io.net APIs", "React", "Docker"},
			Difficulty:       "advanced",
			TimelineEstimate: "6-8 weeks",
			RevenueModel:     "5-10% marketplace fee",
			WhyNow:           "AI training demand exploding. Centralized GPU is expensive. DePIN GPUs are underutilized.",
		},
	},
	"memecoins": {
		{
			Name:             "Pump.fun Analytics Pro",
			Description:      "Real-time analytics for pump.fun launches. Bonding curve analysis, whale detection, rug pull probability score, social sentiment.",
			TechStack:        []string{"React", "Pump.fun API", "Helius", "Twitter API"},
			Difficulty:       "intermediate",
			TimelineEstimate: "3-4 weeks",
			RevenueModel:     "Premium subscription $20-50/mo",
			WhyNow:           "39K tokens/day on pump.fun. Most are scams. Traders need edge. First good analytics tool wins.",
		},
		{
			Name:             "Meme Token Sniper Bot",
			Description:      "Bot that detects new pump.fun launches, analyzes creator wallet history, and auto-buys promising tokens within first block.",
			TechStack:        []string{"Rust", "Jito MEV", "Pump.fun SDK", "WebSocket"},
			Difficulty:       "advanced",
			TimelineEstimate: "4-6 weeks",
			RevenueModel:     "Trading profits or bot rentals",
			WhyNow:           "First buyers get 10-100x. Manual trading too slow. Jito bundles enable priority.",
		},
		{
			Name:             "Meme Launchpad Alternative",
			Description:      "Pump.fun competitor with better tokenomics: anti-rug features, locked liquidity, creator vesting. Fair launch focused.",
			TechStack:        []string{"Anchor", "React", "Metaplex", "Helius"},
			Difficulty:       "advanced",
			TimelineEstimate: "6-8 weeks",
			RevenueModel:     "0.5-1% creation/trading fee",
			WhyNow:           "Pump.fun dominant but criticized. Market wants alternatives. $180M daily volume to capture.",
		},
	},
	"defi_evolution": {
		{
			Name:             "Intent-Based Trading Interface",
			Description:      "Natural language trading: 'Swap $100 to SOL when price drops 5%'. AI interprets intent, executes via Jupiter.",
			TechStack:        []string{"Claude API", "Jupiter SDK", "React", "WebSocket"},
			Difficulty:       "intermediate",
			TimelineEstimate: "3-4 weeks",
			RevenueModel:     "Premium feature or affiliate",
			WhyNow:           "Intents are hot narrative. Trading UX still complex. AI + DeFi intersection underexplored.",
		},
		{
			Name:             "Liquid Staking Comparator",
			Description:      "Tool comparing mSOL, jitoSOL, bSOL yields, lock periods, and risks. One-click migration between LSTs.",
			TechStack:        []string{"React", "Marinade/Jito/Blaze APIs", "TypeScript"},
			Difficulty:       "beginner",
			TimelineEstimate: "2-3 weeks",
			RevenueModel:     "Referral fees from protocols",
			WhyNow:           "LST competition heating up. Users confused about differences. Migration is manual and complex.",
		},
	},
	"zk_compression": {
		{
			Name:             "cNFT Migration Service",
			Description:      "Batch migration tool converting legacy NFT collections to compressed NFTs. Cost calculator, metadata preservation, verification.",
			TechStack:        []string{"Light Protocol", "Metaplex", "TypeScript", "React"},
			Difficulty:       "intermediate",
			TimelineEstimate: "3-4 weeks",
			RevenueModel:     "Per-NFT migration fee",
			WhyNow:           "1000x cost reduction with compression. Legacy collections paying high rent. Market needs migration path.",
		},
		{
			Name:             "Compressed Token Factory",
			Description:      "No-code platform to launch compressed tokens with minimal costs. Includes airdrop tools, holder snapshots, analytics.",
			TechStack:        []string{"Light Protocol", "React", "Anchor", "Helius"},
			Difficulty:       "intermediate",
			TimelineEstimate: "4-5 weeks",
			RevenueModel:     "Token creation fees",
			WhyNow:           "State rent is barrier to experimentation. Compression removes friction. First no-code tool wins.",
		},
	},
}
