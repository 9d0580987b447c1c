package domain

// DocsPrefix is the path every docfooter link must start with.
const DocsPrefix = "/docs/"

// Link is one related or see-also link of a docfooter.
type Link struct {
	ID    int    `yaml:"-"`
	Title string `yaml:"title"`
	URL   string `yaml:"url"`
}

// RequestBlock is one code sample of a request/response block.
type RequestBlock struct {
	ID       int    `yaml:"-"`
	Language string `yaml:"language"`
	Code     string `yaml:"code"`
}

// Response is the single response body of a request/response block.
type Response struct {
	Body string `yaml:"body"`
}

// Button is one item of a button list.
type Button struct {
	ID    int    `yaml:"-"`
	Label string `yaml:"label"`
	Link  string `yaml:"link"`
}

// DocFooter is the serializable content of the docfooter tool.
type DocFooter struct {
	RelatedLinks []Link `yaml:"relatedLinks"`
	SeeAlso      []Link `yaml:"seeAlso"`
}

// RequestResponse is the serializable content of the request/response tool.
type RequestResponse struct {
	Method   string         `yaml:"method"`
	Requests []RequestBlock `yaml:"requests"`
	Response Response       `yaml:"response"`
}

// ButtonList is the serializable content of the button list tool.
type ButtonList struct {
	Items []Button `yaml:"items"`
}
