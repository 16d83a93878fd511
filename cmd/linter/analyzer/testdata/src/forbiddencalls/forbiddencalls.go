package forbiddencalls

import (
	"log"
	"os"

	zlog "github.com/rs/zerolog/log"
)

func SomePanicFunction() {
	panic("this is forbidden") // want "panic is forbidden"
}

func SomeLogFatalFunction() {
	log.Fatal("this is forbidden") // want "log.Fatal is forbidden outside main function"
}

func SomeOsExitFunction() {
	os.Exit(1) // want "os.Exit is forbidden outside main function"
}

func SomeZerologFatalFunction() {
	zlog.Fatal().Msg("this is forbidden") // want "zerolog log.Fatal is forbidden outside main function"
}

func SomeZerologPanicFunction() {
	zlog.Panic().Msg("this is forbidden") // want "zerolog log.Panic is forbidden outside main function"
}

func ZerologInfoIsFine() {
	zlog.Info().Msg("allowed")
}

func MultipleCallsFunction() {
	panic("panic 1")   // want "panic is forbidden"
	log.Fatal("fatal") // want "log.Fatal is forbidden outside main function"
	os.Exit(0)         // want "os.Exit is forbidden outside main function"
}
