// Package lexicon holds the built-in term tables used by the SEO and
// brand-voice analyzers: stop words, voice-dimension vocabularies,
// emotion vocabularies and Chinese punctuation.
package lexicon

import (
	"contentaudit/internal/language"
)

// Category names a group of terms inside a voice dimension, e.g.
// "formal" within "formality".
type Category struct {
	Name  string
	Terms []string
}

// Dimension is an ordered set of competing categories. Order matters:
// ties between categories resolve to the earlier one.
type Dimension struct {
	Name       string
	Categories []Category
}

var stopWordsEN = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true,
	"but": true, "in": true, "on": true, "at": true, "to": true,
	"for": true, "of": true, "with": true, "by": true, "from": true,
	"as": true, "is": true, "was": true, "are": true, "were": true,
	"be": true, "been": true, "being": true, "have": true, "has": true,
	"had": true, "do": true, "does": true, "did": true, "will": true,
	"would": true, "could": true, "should": true, "may": true,
	"might": true, "must": true, "can": true, "shall": true,
}

var stopWordsZH = map[string]bool{
	"的": true, "是": true, "在": true, "了": true, "和": true,
	"与": true, "或": true, "有": true, "这": true, "那": true,
	"我": true, "你": true, "他": true, "她": true, "它": true,
	"们": true, "就": true, "也": true, "都": true, "而": true,
	"及": true, "着": true, "把": true, "被": true, "让": true,
	"给": true, "从": true, "到": true, "为": true, "以": true,
	"对": true, "于": true, "但": true, "如": true, "若": true,
	"因": true, "所": true, "能": true, "会": true, "可以": true,
	"已经": true, "可能": true, "应该": true, "需要": true,
	"这个": true, "那个": true, "什么": true, "怎么": true,
	"如何": true, "为什么": true, "因为": true, "所以": true,
	"但是": true, "然而": true, "不过": true, "如果": true,
	"虽然": true, "即使": true, "无论": true, "一个": true,
	"一种": true, "一些": true, "这些": true, "那些": true,
	"自己": true, "我们": true, "你们": true, "他们": true,
	"它们": true,
}

// StopWords returns the built-in stop-word set for a language. The
// returned map is shared; callers must not mutate it.
func StopWords(tag language.Tag) map[string]bool {
	if tag == language.ZH {
		return stopWordsZH
	}
	return stopWordsEN
}

var voiceDimensionsEN = []Dimension{
	{Name: "formality", Categories: []Category{
		{Name: "formal", Terms: []string{
			"hereby", "therefore", "furthermore", "pursuant",
			"regarding", "consequently", "accordingly",
		}},
		{Name: "casual", Terms: []string{
			"hey", "cool", "awesome", "stuff", "yeah", "gonna",
			"kinda", "sorta", "pretty much",
		}},
	}},
	{Name: "tone", Categories: []Category{
		{Name: "professional", Terms: []string{
			"expertise", "solution", "optimize", "leverage",
			"strategic", "implement", "framework",
		}},
		{Name: "friendly", Terms: []string{
			"happy", "excited", "love", "enjoy", "together",
			"share", "helpful", "wonderful",
		}},
	}},
	{Name: "perspective", Categories: []Category{
		{Name: "authoritative", Terms: []string{
			"proven", "research shows", "experts agree",
			"data indicates", "studies confirm",
		}},
		{Name: "conversational", Terms: []string{
			"you might", "let's explore", "we think",
			"imagine if", "consider this",
		}},
	}},
}

var voiceDimensionsZH = []Dimension{
	{Name: "formality", Categories: []Category{
		{Name: "formal", Terms: []string{
			"因此", "鉴于", "综上所述", "应当", "兹", "据此", "特此", "谨此",
		}},
		{Name: "casual", Terms: []string{
			"嗯", "啊", "呢", "吧", "哈", "嘛", "呗", "啦", "呀",
		}},
	}},
	{Name: "tone", Categories: []Category{
		{Name: "professional", Terms: []string{
			"专业", "解决方案", "优化", "策略", "框架", "实现", "架构", "核心",
		}},
		{Name: "friendly", Terms: []string{
			"开心", "分享", "一起", "喜欢", "希望", "感谢", "欢迎", "推荐",
		}},
	}},
	{Name: "perspective", Categories: []Category{
		{Name: "authoritative", Terms: []string{
			"研究表明", "数据显示", "专家指出", "事实证明", "公认",
		}},
		{Name: "conversational", Terms: []string{
			"你可以", "让我们", "我觉得", "试想一下", "不妨",
		}},
	}},
	{Name: "emotion", Categories: []Category{
		{Name: "rational", Terms: []string{
			"分析", "逻辑", "原因", "结果", "结论", "数据", "证据",
		}},
		{Name: "emotional", Terms: []string{
			"感动", "震撼", "温暖", "美好", "遗憾", "惊喜", "心动",
		}},
	}},
}

// VoiceDimensions returns the voice dimensions for a language in
// their canonical order. Chinese carries an extra emotion dimension.
// The result is freshly copied at the slice level so overlays can
// append safely; term slices are shared and must not be mutated.
func VoiceDimensions(tag language.Tag) []Dimension {
	src := voiceDimensionsEN
	if tag == language.ZH {
		src = voiceDimensionsZH
	}
	dims := make([]Dimension, len(src))
	for i, d := range src {
		dims[i] = Dimension{Name: d.Name, Categories: make([]Category, len(d.Categories))}
		copy(dims[i].Categories, d.Categories)
	}
	return dims
}

// EmotionCategories returns the ordered emotion vocabulary used for
// Chinese emotion analysis.
func EmotionCategories() []Category {
	return []Category{
		{Name: "positive", Terms: []string{
			"开心", "快乐", "幸福", "美好", "喜欢", "爱", "感谢",
			"希望", "温暖", "惊喜", "精彩", "棒", "赞",
		}},
		{Name: "negative", Terms: []string{
			"难过", "伤心", "遗憾", "失望", "痛苦", "烦恼", "焦虑",
			"担忧", "困扰", "麻烦",
		}},
		{Name: "excited", Terms: []string{
			"激动", "兴奋", "震撼", "惊艳", "期待", "迫不及待",
		}},
		{Name: "calm", Terms: []string{
			"平静", "安静", "宁静", "淡然", "从容",
		}},
	}
}

// ZHPunctuation lists the full-width punctuation counted toward
// Chinese punctuation density.
const ZHPunctuation = "，。！？、；：“”‘’【】（）《》"
