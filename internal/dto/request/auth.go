package request

type RegisterRequest struct {
	Name            string `form:"name" validate:"required,max=100"`
	Email           string `form:"email" validate:"required,email"`
	Password        string `form:"password" validate:"required,min=8"`
	ConfirmPassword string `form:"confirm_password" validate:"required,eqfield=Password"`

	// bot-mitigation challenge response, verified out-of-band
	CaptchaResponse string `form:"g-recaptcha-response" validate:"-"`
}

type LoginRequest struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}
