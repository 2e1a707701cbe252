package shared

import (
	"fmt"
)

// IdBuilder builds the deep links that notifications point back to.
type IdBuilder struct {
	Host string
}

func (idb *IdBuilder) SiteUrl() string {
	return fmt.Sprintf("https://%s", idb.Host)
}

func (idb *IdBuilder) PostUrl(author, permlink string) string {
	return fmt.Sprintf("https://%s/post/%s/%s", idb.Host, author, permlink)
}

func (idb *IdBuilder) ProfileUrl(author string) string {
	return fmt.Sprintf("https://%s/profile/%s", idb.Host, author)
}

func (idb *IdBuilder) WalletUrl() string {
	return fmt.Sprintf("https://%s/wallet", idb.Host)
}
