package innertube

// DefaultBaseURL is the Innertube API root.
const DefaultBaseURL = "https://www.youtube.com/youtubei/v1"

// Endpoint names the fixed-path JSON endpoints this core speaks to.
type Endpoint string

const (
	EndpointPlayer Endpoint = "player"
	EndpointBrowse Endpoint = "browse"
	EndpointNext   Endpoint = "next"
)

// URL joins the endpoint path onto the API root.
func (e Endpoint) URL(baseURL string) string {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return baseURL + "/" + string(e)
}
