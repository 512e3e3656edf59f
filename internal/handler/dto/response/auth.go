package response

import "nailbook/internal/usecase/queries"

type LoginResponse struct {
	AccessToken string               `json:"access_token"`
	Account     *queries.AccountView `json:"account"`
}

type RegisterResponse struct {
	Account *queries.AccountView `json:"account"`
}
