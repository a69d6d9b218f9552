package model

// TokenPair OAuth 回调换取的令牌对，均为不透明字符串
type TokenPair struct {
	AccessToken string `json:"access_token"`
	IDToken     string `json:"id_token"`
}
