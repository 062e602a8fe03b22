package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"polifund/grant-matcher/internal/models"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "전자 부품", Normalize("  전자   부품  "))
	assert.Equal(t, "smart factory", Normalize("Smart\tFactory"))
	assert.Equal(t, "", Normalize("   "))
}

func TestCompanyTokens(t *testing.T) {
	company := &models.CompanyProfile{
		BizType:          models.StringList{"제조"},
		Items:            models.StringList{"전자부품", " 전자부품 "},
		IndustryKeywords: models.StringList{"SMT"},
	}

	tokens := CompanyTokens(company)

	assert.Len(t, tokens, 3)
	assert.Contains(t, tokens, "전자부품")
	assert.Contains(t, tokens, "smt")
	assert.Contains(t, tokens, "제조")
}

func TestMatchBidirectional(t *testing.T) {
	tokens := TokenSet{"전자부품": {}, "식품 제조": {}}

	// Keyword contained in a token.
	assert.True(t, MatchBidirectional("전자", tokens))
	// Token contained in the keyword.
	assert.True(t, MatchBidirectional("전자부품 제조업", tokens))
	assert.False(t, MatchBidirectional("유통", tokens))
	// Empty keyword never matches.
	assert.False(t, MatchBidirectional("", tokens))
	assert.False(t, MatchBidirectional("   ", tokens))
}
