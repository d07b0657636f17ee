package registry

// DefaultSelection is the set of sources fetched when no explicit list is given.
// Vendor blogs and academic feeds are opt-in via --sources.
var DefaultSelection = []string{
	"marktechpost",
	"mit-tech-review",
	"venturebeat-ai",
	"synced-review",
	"jiqizhixin",
	"qbitai",
}

func defaultSources() []Source {
	return []Source{
		// English AI media
		{ID: "marktechpost", Name: "MarkTechPost", URL: "https://www.marktechpost.com/feed/", Category: CategoryBusiness, Language: "en"},
		{ID: "mit-tech-review", Name: "MIT Technology Review", URL: "https://www.technologyreview.com/topic/artificial-intelligence/rss/", Category: CategoryResearch, Language: "en"},
		{ID: "venturebeat-ai", Name: "VentureBeat AI", URL: "https://venturebeat.com/category/ai/feed/", Category: CategoryBusiness, Language: "en"},
		{ID: "synced-review", Name: "Synced Review", URL: "https://syncedreview.com/feed/", Category: CategoryBusiness, Language: "en"},
		{ID: "ai-news", Name: "AI News", URL: "https://www.artificialintelligence-news.com/feed/", Category: CategoryBusiness, Language: "en"},
		{ID: "machinelearningmastery", Name: "Machine Learning Mastery", URL: "https://machinelearningmastery.com/blog/feed/", Category: CategoryResearch, Language: "en"},

		// Chinese AI media
		{ID: "jiqizhixin", Name: "机器之心", URL: "https://www.jiqizhixin.com/rss", Category: CategoryBusiness, Language: "zh"},
		{ID: "qbitai", Name: "量子位", URL: "https://www.qbitai.com/feed", Category: CategoryBusiness, Language: "zh"},

		// Vendor blogs
		{ID: "openai", Name: "OpenAI Blog", URL: "https://openai.com/blog/rss.xml", Category: CategoryReleases, Language: "en"},
		{ID: "anthropic", Name: "Anthropic Blog", URL: "https://www.anthropic.com/blog/rss.xml", Category: CategoryResearch, Language: "en"},
		{ID: "deepmind", Name: "Google DeepMind", URL: "https://deepmind.google/blog/rss.xml", Category: CategoryResearch, Language: "en"},
		{ID: "meta-ai", Name: "Meta AI Blog", URL: "https://ai.meta.com/blog/rss/", Category: CategoryResearch, Language: "en"},

		// Academic
		{ID: "arxiv-ai", Name: "arXiv cs.AI", URL: "http://export.arxiv.org/rss/cs.AI", Category: CategoryResearch, Language: "en"},
		{ID: "paperswithcode", Name: "Papers with Code", URL: "https://paperswithcode.com/rss", Category: CategoryResearch, Language: "en"},
	}
}

// Keyword order matters: the first keyword hit tags the organization.
func defaultOrganizations() []Organization {
	return []Organization{
		// International
		{Name: "OpenAI", Keywords: []string{"openai", "gpt", "chatgpt", "dall-e", "sora", "o1", "o3"}},
		{Name: "Google", Keywords: []string{"google", "deepmind", "gemini", "bard", "alphago", "alphafold", "waymo"}},
		{Name: "Anthropic", Keywords: []string{"anthropic", "claude"}},
		{Name: "Meta", Keywords: []string{"meta", "facebook", "llama", "pytorch"}},
		{Name: "Microsoft", Keywords: []string{"microsoft", "azure", "copilot", "bing"}},
		{Name: "NVIDIA", Keywords: []string{"nvidia", "geforce", "rtx", "cuda", "hopper", "blackwell"}},
		{Name: "Amazon", Keywords: []string{"amazon", "aws", "alexa"}},
		{Name: "Apple", Keywords: []string{"apple", "siri"}},
		{Name: "Tesla", Keywords: []string{"tesla", "optimus"}},
		{Name: "Stability AI", Keywords: []string{"stability ai", "stable diffusion"}},
		{Name: "Midjourney", Keywords: []string{"midjourney"}},
		{Name: "Hugging Face", Keywords: []string{"huggingface", "hugging face", "transformers"}},
		{Name: "Cohere", Keywords: []string{"cohere"}},
		{Name: "Perplexity", Keywords: []string{"perplexity"}},

		// China
		{Name: "阿里巴巴", Keywords: []string{"阿里", "alibaba", "通义千问", "qwen", "达摩院"}},
		{Name: "字节跳动", Keywords: []string{"字节", "bytedance", "豆包", "云雀", "doubao"}},
		{Name: "百度", Keywords: []string{"百度", "baidu", "文心一言", "ernie", "apollo", "飞桨"}},
		{Name: "腾讯", Keywords: []string{"腾讯", "tencent", "混元", "hunyuan"}},
		{Name: "华为", Keywords: []string{"华为", "huawei", "盘古", "mindspore", "昇腾"}},
		{Name: "智谱 AI", Keywords: []string{"智谱", "chatglm", "glm", "zhipu"}},
		{Name: "月之暗面", Keywords: []string{"月之暗面", "kimi"}},
		{Name: "MiniMax", Keywords: []string{"minimax", "abab"}},
		{Name: "零一万物", Keywords: []string{"零一万物", "01.ai", "yi"}},
		{Name: "百川智能", Keywords: []string{"百川", "baichuan"}},
		{Name: "商汤", Keywords: []string{"商汤", "sensetime", "书生"}},
		{Name: "科大讯飞", Keywords: []string{"讯飞", "iflytek", "星火"}},
		{Name: "理想汽车", Keywords: []string{"理想", "li auto"}},
		{Name: "小鹏", Keywords: []string{"小鹏", "xpeng"}},
		{Name: "蔚来", Keywords: []string{"蔚来", "nio"}},
		{Name: "小米", Keywords: []string{"小米", "xiaomi"}},

		// Research institutions
		{Name: "MIT", Keywords: []string{"mit", "麻省理工"}},
		{Name: "Stanford", Keywords: []string{"stanford", "斯坦福"}},
		{Name: "Berkeley", Keywords: []string{"berkeley", "伯克利"}},
		{Name: "CMU", Keywords: []string{"cmu", "卡内基梅隆"}},
		{Name: "清华", Keywords: []string{"清华", "tsinghua"}},
		{Name: "北大", Keywords: []string{"北大", "peking university"}},
		{Name: "中科院", Keywords: []string{"中科院", "cas"}},
		{Name: "UIUC", Keywords: []string{"uiuc", "伊利诺伊"}},
	}
}
