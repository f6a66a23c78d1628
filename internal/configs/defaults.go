package configs

// Default returns the built-in configuration: the curated narrative table,
// the GitHub search queries and the on-chain address books.
func Default() *Config {
	return &Config{
		OutputDir:    "output",
		LookbackDays: 14,
		Categories:   defaultCategories(),
		GitHub: GitHubConfig{
			Queries: []string{
				"solana language:rust pushed:>%s",
				"solana language:typescript pushed:>%s",
				"anchor-lang pushed:>%s",
				"solana-program pushed:>%s",
				"topic:solana pushed:>%s",
				"solana ai agent pushed:>%s",
				"pump.fun solana pushed:>%s",
			},
			LookbackDays: 14,
			Limit:        40,
		},
		Helius: HeliusConfig{
			RPCURL: "https://mainnet.helius-rpc.com",
			Programs: []Program{
				{Address: "JUP6LkbZbjS1jKKwapdHNy74zcZ3tLUZoi5QNyVTaV4", Name: "Jupiter", Category: "defi_evolution"},
				{Address: "675kPX9MHTjS2zt1qfr1NYHuzeLXfQM9H24wFSUt1Mp8", Name: "Raydium", Category: "defi_evolution"},
				{Address: "whirLbMiicVdio4qvUfM5KAg6Ct8VwpYzGff3uctyCc", Name: "Orca Whirlpools", Category: "defi_evolution"},
				{Address: "MFv2hWf31Z9kbCa1snEPYctwafyhdvnV7FZnsebVacA", Name: "Marginfi", Category: "defi_evolution"},
				{Address: "KLend2g3cP87ber7j6xNxhQNGFpxmuQJ9HqaJwk9iCKc", Name: "Kamino", Category: "defi_evolution"},
				{Address: "6EF8rrecthR5Dkzon8Nwu78hRvfCKubJ14M5uBEwF6P", Name: "Pump.fun", Category: "memecoins"},
				{Address: "mSoLzYCxHdYgdzU16g5QSh3i5K3z3KZK7ytfqcJm7So", Name: "Marinade", Category: "infrastructure"},
				{Address: "Jito4APyf642JPZPx3hGc6WWJ8zPKtRbRs4P815Awbb", Name: "Jito", Category: "infrastructure"},
				{Address: "metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s", Name: "Metaplex", Category: "zk_compression"},
				{Address: "cmtDvXumGCrqC1Age74AVPhSRVXJMd8PJS91L8KbNCK", Name: "Bubblegum", Category: "zk_compression"},
			},
			Stablecoins: []Mint{
				{Address: "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v", Symbol: "USDC"},
				{Address: "Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB", Symbol: "USDT"},
				{Address: "USDSwr9ApdHk5bvJKMjzff41FfuX8bSxdKcR81vTwcA", Symbol: "USDS"},
			},
			Marketplaces: []Program{
				{Address: "M2mx93ekt1fmXSVkTrUL9xVFHkmME8HTUi5Cyc5aF7K", Name: "Magic Eden", Category: "zk_compression"},
				{Address: "TSWAPaqyCSx2KABk68Shruf4rp7CxcNi8hAsbdwmHbN", Name: "Tensor", Category: "zk_compression"},
			},
		},
		Market: MarketConfig{Symbol: "SOLUSDT"},
		AI:     AIConfig{Model: ""},
	}
}

func defaultCategories() []Category {
	return []Category{
		{
			ID:   "ai_agents",
			Name: "AI Agents & Autonomous Trading",
			Keywords: []string{
				"ai agent", "autonomous", "ai16z", "eliza", "solana agent kit",
				"sendai", "trading bot", "llm", "gpt", "claude", "autonomous trading",
				"swarm", "marc aindreessen", "agent", "agentic",
			},
			Boost:   5,
			BaseWhy: "LLM capabilities reached threshold for autonomous decision-making. Solana's sub-second finality enables real-time agent execution. ai16z proved the model works at scale.",
		},
		{
			ID:   "infrastructure",
			Name: "Infrastructure Upgrades (Firedancer/Alpenglow)",
			Keywords: []string{
				"firedancer", "alpenglow", "tps", "latency", "finality",
				"validator", "jump crypto", "consensus", "throughput", "1m tps",
				"150ms", "upgrade", "block space", "compute unit",
			},
			Boost:   3,
			BaseWhy: "Previous cycle exposed congestion issues. Institutional adoption requires enterprise-grade performance. Firedancer and Alpenglow address core scaling challenges.",
		},
		{
			ID:   "stablecoins_payfi",
			Name: "Stablecoin Revolution & PayFi",
			Keywords: []string{
				"usdc", "usdt", "stablecoin", "payment", "payfi", "micropayment",
				"western union", "visa", "mastercard", "remittance", "cross-border",
				"settlement", "usdpt", "circle",
			},
			Boost:   4,
			BaseWhy: "Solana's low fees make micropayments economically viable. Legacy payment giants (Visa, Western Union) validating blockchain rails. Regulatory clarity emerging.",
		},
		{
			ID:   "rwa_tokenization",
			Name: "Real-World Asset Tokenization",
			Keywords: []string{
				"rwa", "real world asset", "tokenized", "tokenization", "ondo",
				"wisdomtree", "stocks", "bonds", "etf", "securities", "equities",
				"treasury", "commodity", "multiliquid",
			},
			Boost:   5,
			BaseWhy: "SEC clarity on tokenized securities. TradFi demand for 24/7 markets. T+0 settlement superior to T+2 traditional. BlackRock and Fidelity entering space.",
		},
		{
			ID:   "mobile_consumer",
			Name: "Mobile Web3 & Consumer Apps",
			Keywords: []string{
				"seeker", "saga", "mobile", "skr", "dapp store", "seed vault",
				"consumer", "wallet", "phone", "android", "hardware",
			},
			BaseWhy: "Saga success proved demand for crypto phones. Hardware wallets solve UX. Token airdrops subsidize consumer adoption. Mobile-first generation entering crypto.",
		},
		{
			ID:   "depin",
			Name: "DePIN (Decentralized Physical Infrastructure)",
			Keywords: []string{
				"depin", "helium", "render", "hivemapper", "io.net", "nosana",
				"physical infrastructure", "gpu", "wireless", "bandwidth",
				"dawn network", "compute",
			},
			BaseWhy: "AI training demand outstripping centralized GPU supply. Decentralized compute 60% cheaper. Token incentives align hardware contributors. Helium proved model works.",
		},
		{
			ID:   "memecoins",
			Name: "Meme Coins & Launchpads",
			Keywords: []string{
				"pump.fun", "memecoin", "meme coin", "bonk", "wif", "dogwifhat",
				"launchpad", "bonding curve", "pengu", "pump", "degen",
			},
			BaseWhy: "Bonding curve innovation removed rug risk. Low friction = high velocity trading. Cultural moment for meme trading. Solana speed enables better trading UX.",
		},
		{
			ID:   "defi_evolution",
			Name: "DeFi Protocol Evolution",
			Keywords: []string{
				"jupiter", "raydium", "marinade", "jito", "kamino", "drift",
				"perp", "perpetual", "amm", "lending", "borrowing", "yield",
				"liquid staking", "restaking",
			},
			BaseWhy: "Aggregation layer becoming essential infrastructure. Perp demand from CEX refugees. Liquid staking wars driving innovation and yield competition.",
		},
		{
			ID:   "zk_compression",
			Name: "ZK Compression & State Management",
			Keywords: []string{
				"zk compression", "state compression", "light protocol",
				"compressed nft", "cnft", "merkle tree", "storage",
			},
			BaseWhy: "State rent was blocking mass adoption experiments. Compressed NFTs proved concept. 1000x cost reduction unlocks new use cases. Now generalizing to all account types.",
		},
	}
}
