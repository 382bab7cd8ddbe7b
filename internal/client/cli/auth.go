package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/artfolio/artfolio-cli/internal/client/api"
	"github.com/artfolio/artfolio-cli/internal/client/models"
	"github.com/artfolio/artfolio-cli/internal/client/services"
	"github.com/artfolio/artfolio-cli/internal/common"
)

// getSimpleText, getPassword and readFile are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var readFile = os.ReadFile

// sessionIface is the slice of the session the auth commands need. The real
// *services.Session satisfies it; tests can provide a stub.
type sessionIface interface {
	Init(ctx context.Context)
	CurrentUser() *models.User
	Login(ctx context.Context, username, password string) (*models.User, *services.PendingFaceLogin, error)
	CompleteFaceLogin(ctx context.Context, pending *services.PendingFaceLogin, image []byte, fileName string) (*models.User, error)
	Register(ctx context.Context, req *api.RegisterRequest) (*models.User, error)
	Logout(ctx context.Context)
	Refresh(ctx context.Context) *models.User
	IsAdmin(ctx context.Context) bool
}

// Register prompts for the registration form and attempts to create a new
// account. Validation failures are reported without any network call.
//
// On success the new identity is logged in immediately and printed. The
// password byte slices are securely wiped before returning.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	password2, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password2)

	firstName, err := getSimpleText(a.reader, "Enter first name", os.Stdout)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, "Enter last name", os.Stdout)
	if err != nil {
		return err
	}
	userType, err := getSimpleText(a.reader, "Account type (user/artist, empty for user)", os.Stdout)
	if err != nil {
		return err
	}

	req := &api.RegisterRequest{
		Username:  username,
		Email:     email,
		Password:  string(password),
		Password2: string(password2),
		FirstName: firstName,
		LastName:  lastName,
		UserType:  models.UserType(userType),
	}

	user, err := a.session.Register(ctx, req)
	if err != nil {
		log.Printf("Registration unsuccessfull: %s", err.Error())
		return err
	}

	fmt.Println("Success!")
	printUser(user)
	return nil
}

// Login prompts for credentials and runs the password flow. When the account
// has an enrolled face, the backend answers with face_required and the
// command continues into the capture step: the user is asked for an image
// file path, and on a rejected capture only the image is re-requested, the
// credentials stay in force.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, pending, err := a.session.Login(ctx, username, string(password))
	if err != nil {
		log.Printf("Login unsuccessfull: %s", err.Error())
		return err
	}

	if pending != nil {
		a.pending = pending
		fmt.Println("Face verification required.")
		return a.faceStep(ctx)
	}

	log.Printf("Login successfull")
	printUser(user)
	return nil
}

// faceStep runs the capture half of the two-step login. Each attempt needs a
// fresh image; an empty path abandons the login.
func (a *App) faceStep(ctx context.Context) error {
	for {
		path, err := getSimpleText(a.reader, "Path to face image (empty line to cancel)", os.Stdout)
		if err != nil {
			return err
		}
		if path == "" {
			a.pending = nil
			fmt.Println("Login cancelled.")
			return nil
		}

		image, err := readFile(path)
		if err != nil {
			log.Printf("Cannot read image: %s", err.Error())
			continue
		}

		user, err := a.session.CompleteFaceLogin(ctx, a.pending, image, path)
		if err != nil {
			log.Printf("Face verification failed: %s", err.Error())
			continue
		}

		a.pending = nil
		log.Printf("Login successfull")
		printUser(user)
		return nil
	}
}

// WhoAmI prints the current profile, or a hint when anonymous.
func (a *App) WhoAmI(ctx context.Context) error {
	user := a.session.CurrentUser()
	if user == nil {
		fmt.Println("Not logged in.")
		return nil
	}
	printUser(user)
	if a.session.IsAdmin(ctx) {
		fmt.Println("Role: staff")
	}
	return nil
}

// Refresh re-fetches the profile from the backend and prints the result.
func (a *App) Refresh(ctx context.Context) error {
	user := a.session.Refresh(ctx)
	if user == nil {
		fmt.Println("Not logged in.")
		return nil
	}
	printUser(user)
	return nil
}

// Logout revokes the session server-side best-effort and clears local state.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	a.pending = nil
	fmt.Println("Logged out.")
	return nil
}

// UploadFace enrolls a face image for the current account, enabling the
// two-step login on subsequent authentications.
func (a *App) UploadFace(ctx context.Context) error {
	path, err := getSimpleText(a.reader, "Path to face image", os.Stdout)
	if err != nil {
		return err
	}

	image, err := readFile(path)
	if err != nil {
		log.Printf("Cannot read image: %s", err.Error())
		return err
	}

	if err := a.api.UploadFace(ctx, image, path); err != nil {
		log.Printf("Upload unsuccessfull: %s", err.Error())
		return err
	}

	fmt.Println("Face enrolled.")
	return nil
}

func printUser(u *models.User) {
	if u == nil {
		return
	}
	fmt.Printf("%s <%s> [%s] id=%d\n", u.Username, u.Email, u.UserType, u.ID)
}
