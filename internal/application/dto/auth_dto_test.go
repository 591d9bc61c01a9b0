package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hounsa/agrisuivi/internal/application/dto"
)

func validRegisterForm() dto.RegisterForm {
	return dto.RegisterForm{
		Username:        "awa_codjo",
		Email:           "awa@agrisuivi.bj",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	}
}

func TestRegisterForm_Valide(t *testing.T) {
	f := validRegisterForm()
	assert.Empty(t, f.Validate())
}

func TestRegisterForm_UsernameTropCourt(t *testing.T) {
	f := validRegisterForm()
	f.Username = "ab"
	errs := f.Validate()
	assert.Contains(t, errs, "Le nom d'utilisateur doit contenir entre 3 et 50 caractères")
}

func TestRegisterForm_UsernameCaracteresInterdits(t *testing.T) {
	f := validRegisterForm()
	f.Username = "awa codjo!"
	errs := f.Validate()
	assert.Contains(t, errs, "Le nom d'utilisateur ne peut contenir que des lettres, chiffres et _")
}

func TestRegisterForm_EmailInvalide(t *testing.T) {
	f := validRegisterForm()
	f.Email = "pas-un-email"
	errs := f.Validate()
	assert.Contains(t, errs, "Veuillez entrer une adresse email valide")
}

func TestRegisterForm_MotDePasseTropCourt(t *testing.T) {
	f := validRegisterForm()
	f.Password = "abc"
	f.ConfirmPassword = "abc"
	errs := f.Validate()
	assert.Contains(t, errs, "Le mot de passe doit contenir au moins 6 caractères")
}

func TestRegisterForm_ConfirmationDifferente(t *testing.T) {
	f := validRegisterForm()
	f.ConfirmPassword = "autre-chose"
	errs := f.Validate()
	assert.Contains(t, errs, "Les mots de passe ne correspondent pas")
}

func TestRegisterForm_PlusieursErreursCollectees(t *testing.T) {
	f := dto.RegisterForm{Username: "a", Email: "x", Password: "1", ConfirmPassword: "2"}
	errs := f.Validate()
	assert.Len(t, errs, 4)
}
