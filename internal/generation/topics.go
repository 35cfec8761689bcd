package generation

import (
	"embed"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

const topicKeywordsEnv = "TOPIC_KEYWORDS_YAML"

//go:embed topics.yaml
var topicsFS embed.FS

// fallback list used when the YAML is missing or invalid
var fallbackTopicKeywords = []string{
	"programming", "coding", "software", "javascript", "typescript",
	"python", "golang", "rust", "java", "kotlin", "swift",
	"html", "css", "react", "angular", "vue", "nodejs", "node",
	"sql", "database", "api", "backend", "frontend", "fullstack",
	"devops", "docker", "kubernetes", "git", "linux", "bash", "terminal",
	"algorithm", "algorithms", "compiler", "framework", "debugging",
	"data structures", "machine learning", "deep learning",
	"web development", "mobile development", "game development",
	"cloud", "aws", "azure", "microservices",
}

type yamlTopicList struct {
	Keywords []string `yaml:"keywords"`
}

var (
	topicOnce     sync.Once
	topicKeywords []string
)

// IsTechnicalTopic is the keyword predicate deciding whether IDE setup
// guidance fits the subject. Single-word keywords match whole tokens;
// multi-word keywords match as phrases.
func IsTechnicalTopic(parts ...string) bool {
	text := strings.ToLower(strings.TrimSpace(strings.Join(parts, " ")))
	if text == "" {
		return false
	}
	tokens := map[string]bool{}
	for _, tok := range strings.FieldsFunc(text, func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	}) {
		tokens[tok] = true
	}
	for _, kw := range loadTopicKeywords() {
		if strings.ContainsRune(kw, ' ') {
			if strings.Contains(text, kw) {
				return true
			}
			continue
		}
		if tokens[kw] {
			return true
		}
	}
	return false
}

func loadTopicKeywords() []string {
	topicOnce.Do(func() {
		topicKeywords = fallbackTopicKeywords
		data, err := readTopicKeywords()
		if err != nil {
			return
		}
		var list yamlTopicList
		if err := yaml.Unmarshal(data, &list); err != nil {
			return
		}
		cleaned := make([]string, 0, len(list.Keywords))
		for _, kw := range list.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw != "" {
				cleaned = append(cleaned, kw)
			}
		}
		if len(cleaned) > 0 {
			topicKeywords = cleaned
		}
	})
	return topicKeywords
}

func readTopicKeywords() ([]byte, error) {
	if path := strings.TrimSpace(os.Getenv(topicKeywordsEnv)); path != "" {
		return os.ReadFile(path)
	}
	return topicsFS.ReadFile("topics.yaml")
}
