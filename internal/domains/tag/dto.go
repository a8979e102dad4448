package tag

type TagsEnvelope struct {
	Tags []string `json:"tags"`
}
