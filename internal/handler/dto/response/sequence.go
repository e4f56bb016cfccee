package response

type NumberResponse struct {
	Number string `json:"number"`
}
