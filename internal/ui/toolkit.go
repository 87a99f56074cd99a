package ui

// Window is an opaque handle to the toolkit window a dialog is transient
// for. Implementations assert it to their own window type.
type Window any

// Response identifies the way a dialog was dismissed. Values follow the
// toolkit's response-code convention; ResponseCancel is the cancel sentinel
// every dialog kind reports on rejection.
type Response int

const (
	ResponseNone Response = -(iota + 1)
	ResponseReject
	ResponseAccept
	ResponseDeleteEvent
	ResponseOK
	ResponseCancel
	ResponseClose
	ResponseYes
	ResponseNo
)

// ButtonsType selects the prebuilt button set of a message dialog.
type ButtonsType int

const (
	ButtonsNone ButtonsType = iota
	ButtonsOK
	ButtonsClose
	ButtonsCancel
	ButtonsYesNo
	ButtonsOKCancel
)

// MessageType selects the message dialog severity.
type MessageType int

const (
	MessageInfo MessageType = iota
	MessageWarning
	MessageQuestion
	MessageError
	MessageOther
)

// ChooserAction selects what a file chooser picks. The zero value selects a
// folder, matching the presenter default.
type ChooserAction int

const (
	ChooserActionSelectFolder ChooserAction = iota
	ChooserActionOpen
	ChooserActionSave
	ChooserActionCreateFolder
)

// FileFilter restricts a chooser to files matching named glob patterns.
type FileFilter struct {
	Name     string
	Patterns []string
}

// ChooserOptions configures a native file chooser at construction time.
type ChooserOptions struct {
	Title  string
	Action ChooserAction
}

// Toolkit is the widget system the presenter drives. It is an external
// collaborator: the real implementation lives in ui/fynetk, tests script a
// fake.
type Toolkit interface {
	// NewBuilder returns a builder that instantiates objects from markup.
	NewBuilder() Builder
	// NewFileChooser constructs a native file/folder chooser.
	NewFileChooser(parent Window, opts ChooserOptions) FileChooser
	// RunIdle defers fn to the main-loop idle queue so it executes on the
	// UI thread regardless of the calling goroutine.
	RunIdle(fn func())
}

// Builder instantiates UI objects from markup and hands them out by id.
type Builder interface {
	AddFromString(markup string) error
	AddObjectsFromString(markup string, ids ...string) error
	Dialog(id string) (Dialog, error)
	Entry(id string) (Entry, error)
	Label(id string) (Label, error)
}

// Dialog is a single presentable dialog instance.
type Dialog interface {
	SetTransientFor(parent Window)
	// SetMarkup sets the dialog body text.
	SetMarkup(text string)
	// Run shows the dialog modally and blocks the calling goroutine until
	// it is dismissed. Must not be called from the UI goroutine.
	Run() Response
	Show()
	Hide()
	Destroy()
}

// Entry is a single-line text input widget.
type Entry interface {
	Text() string
	SetText(text string)
}

// Label is a static text widget.
type Label interface {
	Text() string
	SetText(text string)
}

// FileChooser is a native file/folder selection dialog.
type FileChooser interface {
	SetCurrentFolder(path string)
	AddFilter(filter FileFilter)
	// SetCreateFolders allows creating the target folder. Implementations
	// without an in-dialog control may create a missing starting folder
	// before the dialog opens.
	SetCreateFolders(create bool)
	// Run blocks until the user accepts or cancels.
	Run() Response
	// Filename returns the selected path after an accepting Run.
	Filename() string
	// CurrentFolder returns the folder shown when nothing was selected.
	CurrentFolder() string
	Destroy()
}

// Settings is the application settings collaborator consumed by choosers.
type Settings interface {
	// ProfileDataPath is the base directory choosers open in.
	ProfileDataPath() string
}
