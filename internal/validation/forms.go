package validation

import "strings"

// Field identifies a form input.
type Field string

const (
	FieldEmail           Field = "email"
	FieldPassword        Field = "password"
	FieldConfirmPassword Field = "confirm_password"
	FieldFullName        Field = "full_name"
	FieldName            Field = "name"
	FieldCountry         Field = "country_code"
	FieldPhone           Field = "phone"
	FieldBankAccount     Field = "account_number"
	FieldAmount          Field = "amount"
)

// Form maps each field of a form to its verdict. It is rebuilt on demand
// rather than mutated as the user types.
type Form map[Field]Verdict

// Valid reports whether every field passed.
func (f Form) Valid() bool {
	for _, v := range f {
		if !v.OK {
			return false
		}
	}
	return true
}

// Errors returns the failing fields only.
func (f Form) Errors() map[Field]error {
	out := make(map[Field]error)
	for field, v := range f {
		if err := v.Err(); err != nil {
			out[field] = err
		}
	}
	return out
}

// requiredThen reports ErrRequired for blank input and otherwise defers to rule.
func requiredThen(value string, rule func(string) Verdict) Verdict {
	if v := Required(value); !v.OK {
		return v
	}
	return rule(value)
}

// LoginForm holds the login screen inputs. Login only checks password length;
// strength rules apply at signup.
type LoginForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (f LoginForm) Validate() Form {
	return Form{
		FieldEmail: requiredThen(f.Email, Email),
		FieldPassword: requiredThen(f.Password, func(p string) Verdict {
			v := Password(p)
			for _, m := range v.Missing {
				if m == "length" {
					return fail(v.Reason, m)
				}
			}
			return pass()
		}),
	}
}

type SignupForm struct {
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (f SignupForm) Validate() Form {
	return Form{
		FieldFullName:        requiredThen(f.FullName, Name),
		FieldEmail:           requiredThen(f.Email, Email),
		FieldPassword:        requiredThen(f.Password, Password),
		FieldConfirmPassword: requiredThen(f.ConfirmPassword, func(c string) Verdict { return PasswordConfirmation(f.Password, c) }),
	}
}

type ForgotPasswordForm struct {
	Email string `json:"email"`
}

func (f ForgotPasswordForm) Validate() Form {
	return Form{FieldEmail: requiredThen(f.Email, Email)}
}

// RecipientForm is the new-recipient form of the send flow. The bank account
// is optional but must be valid when given.
type RecipientForm struct {
	Name          string `json:"name"`
	CountryCode   string `json:"country_code"`
	Phone         string `json:"phone"`
	BankName      string `json:"bank_name,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`
}

func (f RecipientForm) Validate() Form {
	form := Form{
		FieldName:    requiredThen(f.Name, Name),
		FieldCountry: Required(f.CountryCode),
		FieldPhone:   requiredThen(f.Phone, func(p string) Verdict { return PhoneForCountry(p, f.CountryCode) }),
	}
	if strings.TrimSpace(f.AccountNumber) != "" {
		form[FieldBankAccount] = BankAccount(f.AccountNumber)
	}
	return form
}
