package shared

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func Test_Truncate_Short_Text_Unchanged(t *testing.T) {
	assert.Equal(t, "hello world", TruncateWithEllipsis("hello world", 32))
	assert.Equal(t, "", TruncateWithEllipsis("", 32))
}

func Test_Truncate_Breaks_At_Space(t *testing.T) {
	res := TruncateWithEllipsis("the quick brown fox jumps over the lazy dog", 20)
	assert.True(t, strings.HasSuffix(res, "…"))
	assert.Equal(t, "the quick brown fox…", res)
}

func Test_Truncate_Exact_Length_Unchanged(t *testing.T) {
	text := strings.Repeat("a", 32)
	assert.Equal(t, text, TruncateWithEllipsis(text, 32))
	wide := strings.Repeat("好", 32)
	assert.Equal(t, wide, TruncateWithEllipsis(wide, 32))
}

func Test_Truncate_Result_Never_Exceeds_Limit(t *testing.T) {
	res := TruncateWithEllipsis(strings.Repeat("a", 200), MaxBodyLen)
	assert.Equal(t, MaxBodyLen, utf8.RuneCountInString(res))
	assert.True(t, strings.HasSuffix(res, "…"))

	res = TruncateWithEllipsis("the quick brown fox jumps over the lazy dog", 20)
	assert.LessOrEqual(t, utf8.RuneCountInString(res), 20)
}

func Test_Truncate_Cuts_On_Rune_Boundary(t *testing.T) {
	res := TruncateWithEllipsis(strings.Repeat("好", 200), MaxBodyLen)
	assert.True(t, utf8.ValidString(res))
	assert.Equal(t, MaxBodyLen, utf8.RuneCountInString(res))
	assert.True(t, strings.HasSuffix(res, "…"))
}

func Test_Dedup_Signature_Strips_NonAlnum(t *testing.T) {
	sig := DedupSignature("vote", "New Vote", `@alice voted on "My Post!"`, "https://hive.blog/post/alice/my-post")
	assert.Equal(t, "vote_NewVote_alicevotedonMyPost_httpshiveblogpostalicemypost", sig)
}

func Test_Dedup_Signature_Stable_Across_Punctuation(t *testing.T) {
	sig1 := DedupSignature("reply", "New Comment", "@bob: hi there", "https://x.y/p")
	sig2 := DedupSignature("reply", "New Comment", "@bob hi-there!", "https://x.y/p")
	assert.Equal(t, sig1, sig2)
}

func Test_Dedup_Signature_Differs_By_Type(t *testing.T) {
	sig1 := DedupSignature("vote", "T", "B", "U")
	sig2 := DedupSignature("reblog", "T", "B", "U")
	assert.NotEqual(t, sig1, sig2)
}

func Test_Sig_Hash_Deterministic(t *testing.T) {
	sig := DedupSignature("vote", "New Vote", "body", "https://x.y/p")
	assert.Equal(t, SigHash(sig), SigHash(sig))
	assert.NotEqual(t, SigHash(sig), SigHash(sig+"x"))
}

func Test_Get_Host_Name(t *testing.T) {
	host, err := GetHostName("https://hive.blog/post/alice/my-post")
	assert.Nil(t, err)
	assert.Equal(t, "hive.blog", host)
}

func Test_Id_Builder_Urls(t *testing.T) {
	idb := IdBuilder{Host: "hive.blog"}
	assert.Equal(t, "https://hive.blog", idb.SiteUrl())
	assert.Equal(t, "https://hive.blog/post/alice/my-post", idb.PostUrl("alice", "my-post"))
	assert.Equal(t, "https://hive.blog/profile/bob", idb.ProfileUrl("bob"))
	assert.Equal(t, "https://hive.blog/wallet", idb.WalletUrl())
}
