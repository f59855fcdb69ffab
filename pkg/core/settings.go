package core

// Settings carries the user-level configuration applied when a nested
// repository is bootstrapped.
type Settings struct {
	UserName      string `env:"USER_NAME"`
	UserEmail     string `env:"USER_EMAIL"`
	DefaultBranch string `env:"DEFAULT_BRANCH" envDefault:"main"`
}
