package delivery

import (
	"html/template"
	"strings"
)

// Topic is the email category assigned to an item from its title.
type Topic struct {
	Icon  string
	Label string
	Color template.CSS
}

type topicRule struct {
	topic    Topic
	keywords []string
}

var topicRules = []topicRule{
	{Topic{"🚀", "Product Launch", "#e74c3c"}, []string{"发布", "launch", "release", "新品", "推出"}},
	{Topic{"📚", "Research", "#3498db"}, []string{"研究", "paper", "research", "论文", "学术"}},
	{Topic{"💰", "Funding", "#27ae60"}, []string{"融资", "funding", "投资", "million", "billion"}},
	{Topic{"⚖️", "Policy", "#9b59b6"}, []string{"政策", "regulation", "法律", "监管", "policy"}},
	{Topic{"🔒", "Safety & Privacy", "#f39c12"}, []string{"安全", "safety", "security", "隐私"}},
	{Topic{"💼", "Business Application", "#1abc9c"}, []string{"应用", "案例", "case", "partner"}},
}

var generalTopic = Topic{"🤖", "AI News", "#34495e"}

const defaultOrganizationColor template.CSS = "#6c757d"

var organizationColors = map[string]template.CSS{
	"OpenAI":    "#10a37f",
	"Google":    "#4285f4",
	"Anthropic": "#cc785c",
	"Meta":      "#0668e1",
	"Microsoft": "#00a4ef",
	"NVIDIA":    "#76b900",
	"阿里巴巴":      "#ff6a00",
	"字节跳动":      "#1f76ff",
	"百度":        "#2932e1",
	"腾讯":        "#0052d9",
	"华为":        "#cf0a2c",
	"智谱 AI":     "#2c5aa0",
	"月之暗面":      "#000000",
}

// Classify picks the first topic whose keywords appear in the title.
func Classify(title string) Topic {
	lower := strings.ToLower(title)
	for _, rule := range topicRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.topic
			}
		}
	}
	return generalTopic
}

func OrganizationColor(name string) template.CSS {
	if color, ok := organizationColors[name]; ok {
		return color
	}
	return defaultOrganizationColor
}
