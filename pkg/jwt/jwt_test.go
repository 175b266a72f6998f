package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/logistica-api/pkg/jwt"
)

const (
	secret = "test-secret"
	issuer = "logistica-api-test"
)

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, "user-1", "company-1", pkgjwt.RoleDespacho, issuer, 60)
	require.NoError(t, err)

	claims, err := pkgjwt.Parse(secret, tok, issuer)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "company-1", claims.CompanyID)
	assert.Equal(t, pkgjwt.RoleDespacho, claims.Role)
}

func TestParse_Rechazos(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, "user-1", "company-1", pkgjwt.RoleAdmin, issuer, 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret", tok, issuer)
	assert.Error(t, err, "secret incorrecto")

	_, err = pkgjwt.Parse(secret, tok, "otro-emisor")
	assert.Error(t, err, "issuer distinto")

	expired, err := pkgjwt.Generate(secret, "user-1", "company-1", pkgjwt.RoleAdmin, issuer, -1)
	require.NoError(t, err)
	_, err = pkgjwt.Parse(secret, expired, issuer)
	assert.Error(t, err, "token expirado")

	_, err = pkgjwt.Generate("", "user-1", "company-1", pkgjwt.RoleAdmin, issuer, 60)
	assert.Error(t, err)
}
