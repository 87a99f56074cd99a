package main

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	fyneApp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"profile-editor/internal/config"
	"profile-editor/internal/core"
	"profile-editor/internal/i18n"
	"profile-editor/internal/logger"
	"profile-editor/internal/notify"
	"profile-editor/internal/resource"
	"profile-editor/internal/ui"
	"profile-editor/internal/ui/fynetk"
)

func main() {
	cfg, err := config.Load()
	if cfg == nil {
		cfg = &config.Config{
			InstallDir:     config.DefaultInstallDir(),
			ProfileDataDir: config.DefaultProfileDataDir(),
		}
	}
	if cfg.Locale != "" {
		i18n.Init(cfg.Locale)
	}

	application := fyneApp.NewWithID(core.AppID)
	window := application.NewWindow(core.AppName)
	window.Resize(fyne.NewSize(480, 360))

	log := logger.New(cfg)
	if err != nil {
		log.Logf("Configuration load warning: %v", err)
	}

	statusLabel := widget.NewLabel("Idle")
	statusLabel.Wrapping = fyne.TextWrapWord
	logOutput := widget.NewMultiLineEntry()
	logOutput.Disable()
	log.SetObserver(func(line string) {
		fyne.Do(func() {
			logOutput.SetText(logOutput.Text + line + "\n")
			statusLabel.SetText(line)
		})
	})

	toolkit := fynetk.New(application, i18n.Translate)
	resources := resource.NewCache(i18n.Translate)
	presenter := ui.NewPresenter(toolkit, resources, i18n.Translate)
	notifier := notify.New(application, log)

	// Present blocks until dismissal, so every handler hops off the main loop.
	show := func(fn func()) func() {
		return func() { go fn() }
	}

	dataDirLabel := widget.NewLabel(cfg.ProfileDataPath())
	dataDirLabel.Wrapping = fyne.TextWrapWord

	content := container.NewVBox(
		widget.NewLabel("Profile data directory"),
		dataDirLabel,
		widget.NewButton("Choose data folder...", show(func() {
			result, err := presenter.Present(ui.KindChooser, window, ui.Options{
				Settings:   cfg,
				Title:      "Profile data",
				CreateDirs: true,
			})
			if err != nil {
				log.Logf("Chooser failed: %v", err)
				return
			}
			if result.Canceled() || result.Path == "" {
				return
			}
			cfg.ProfileDataDir = result.Path
			if err := cfg.Save(); err != nil {
				_, _ = presenter.Present(ui.KindError, window, ui.Options{Text: err.Error()})
				return
			}
			fyne.Do(func() { dataDirLabel.SetText(cfg.ProfileDataPath()) })
			log.Logf("Profile data directory set to %s", result.Path)
		})),
		widget.NewButton("Open profile...", show(func() {
			result, err := presenter.ChooserWithPatterns(window, cfg, "Profiles", []string{"*.json"}, "Open file")
			if err != nil {
				log.Logf("Chooser failed: %v", err)
				return
			}
			if !result.Canceled() && result.Path != "" {
				log.Logf("Opened profile %s", result.Path)
			}
		})),
		widget.NewButton("Rename profile...", show(func() {
			result, err := presenter.Present(ui.KindInput, window, ui.Options{Text: "default"})
			if err != nil {
				log.Logf("Input failed: %v", err)
				return
			}
			if result.Response == ui.ResponseOK {
				log.Logf("Profile renamed to %q", result.Text)
			}
		})),
		widget.NewButton("Reset profile", show(func() {
			result, err := presenter.Present(ui.KindQuestion, window, ui.Options{})
			if err != nil {
				log.Logf("Question failed: %v", err)
				return
			}
			if result.Response == ui.ResponseOK {
				log.Log("Profile reset confirmed.")
			}
		})),
		widget.NewButton("Run maintenance task", show(func() {
			runMaintenance(presenter, window, notifier, log)
		})),
		widget.NewButton("About", show(func() {
			if _, err := presenter.Present(ui.KindAbout, window, ui.Options{}); err != nil {
				log.Logf("About failed: %v", err)
			}
		})),
		widget.NewSeparator(),
		statusLabel,
		container.NewStack(logOutput),
	)

	window.SetContent(content)
	window.ShowAndRun()
}

// runMaintenance simulates a long-running task reporting progress through
// the wait dialog from a worker goroutine.
func runMaintenance(presenter *ui.Presenter, window fyne.Window, notifier *notify.DesktopNotifier, log *logger.Logger) {
	result, err := presenter.Present(ui.KindWait, window, ui.Options{})
	if err != nil {
		log.Logf("Wait dialog failed: %v", err)
		return
	}
	wait := result.Wait
	wait.Show("")
	defer wait.Destroy()

	for step := 1; step <= 3; step++ {
		wait.SetText(fmt.Sprintf("Task is running... (%d/3)", step))
		time.Sleep(time.Second)
	}
	wait.SetText("Done!")
	notifier.Send(core.AppName, i18n.Translate("Done!"))
	log.Log("Maintenance task finished.")
}
