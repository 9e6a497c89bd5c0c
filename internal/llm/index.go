package llm

var DefaultClient *Client

func InitDefaultClient(baseUrl, defaultAPIKey, model string) *Client {
	DefaultClient = NewClient(baseUrl, defaultAPIKey, model)
	return DefaultClient
}

func GetDefaultClient() *Client {
	return DefaultClient
}
