package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/hounsa/agrisuivi/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testUserID = "00000000-0000-0000-0000-000000000001"
	testEmail  = "demo@agrisuivi.bj"
	testIssuer = "agrisuivi-test"
)

func TestGenerateParse_AllerRetour(t *testing.T) {
	token, err := pkgjwt.Generate(testSecret, testUserID, testEmail, testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, email, err := pkgjwt.Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
	assert.Equal(t, testEmail, email)
}

func TestParse_JetonExpire(t *testing.T) {
	token, err := pkgjwt.Generate(testSecret, testUserID, testEmail, testIssuer, -5)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testSecret, token)
	assert.Error(t, err, "un jeton expiré doit être rejeté")
}

func TestParse_MauvaiseCle(t *testing.T) {
	token, err := pkgjwt.Generate(testSecret, testUserID, testEmail, testIssuer, 60)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("une-autre-cle", token)
	assert.Error(t, err, "un jeton signé avec une autre clé doit être rejeté")
}

func TestParse_JetonIllisible(t *testing.T) {
	_, _, err := pkgjwt.Parse(testSecret, "pas-un-jwt")
	assert.Error(t, err)
}

func TestGenerate_SecretVide(t *testing.T) {
	_, err := pkgjwt.Generate("", testUserID, testEmail, testIssuer, 60)
	assert.Error(t, err)
}
