package core

import (
	"fmt"
	"os"
)

// NoteType is the discriminant of a note's content.
type NoteType int

const (
	TypeColor NoteType = iota + 1
	TypeCrossReference
	TypeFile
	TypeGroup
	TypeHTML
	TypeImage
	TypeLauncher
	TypeLink
	TypeSound
	TypeText
)

// String returns the name used in the type attribute of <note> elements.
func (t NoteType) String() string {
	switch t {
	case TypeColor:
		return "color"
	case TypeCrossReference:
		return "cross_reference"
	case TypeFile:
		return "file"
	case TypeGroup:
		return "group"
	case TypeHTML:
		return "html"
	case TypeImage:
		return "image"
	case TypeLauncher:
		return "launcher"
	case TypeLink:
		return "link"
	case TypeSound:
		return "sound"
	case TypeText:
		return "text"
	}
	return fmt.Sprintf("NoteType(%d)", int(t))
}

// ParseNoteType maps a type name back to its NoteType. Both "cross_reference"
// and "crossreference" are accepted.
func ParseNoteType(name string) (NoteType, error) {
	switch name {
	case "color":
		return TypeColor, nil
	case "cross_reference", "crossreference":
		return TypeCrossReference, nil
	case "file":
		return TypeFile, nil
	case "group":
		return TypeGroup, nil
	case "html":
		return TypeHTML, nil
	case "image":
		return TypeImage, nil
	case "launcher":
		return TypeLauncher, nil
	case "link":
		return TypeLink, nil
	case "sound":
		return TypeSound, nil
	case "text":
		return TypeText, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownNoteType, name)
}

// IsFileBacked reports whether notes of this type embed a file copied into the
// basket folder.
func (t NoteType) IsFileBacked() bool {
	switch t {
	case TypeFile, TypeImage, TypeLauncher, TypeSound:
		return true
	}
	return false
}

// Content is the payload of a note. The set of implementations is closed.
type Content interface {
	Type() NoteType
	content()
}

// ColorContent is a color swatch note.
type ColorContent struct {
	Color Color
}

// CrossReference links to another basket, e.g. basket://welcome.
type CrossReference struct {
	Title string
	URL   string
	Icon  string
}

// Link is an external link.
type Link struct {
	Title     string
	URL       string
	Icon      string
	AutoTitle bool
	AutoIcon  bool
}

// HTMLContent is rich text. It is spilled to a note-<n>.html file.
type HTMLContent string

// TextContent is plain text written inline.
type TextContent string

// FileContent embeds an arbitrary file.
type FileContent struct{ Path string }

// ImageContent embeds an image file.
type ImageContent struct{ Path string }

// LauncherContent embeds a .desktop launcher.
type LauncherContent struct{ Path string }

// SoundContent embeds a sound file.
type SoundContent struct{ Path string }

// GroupContent marks a composite note. Children are attached with Note.AddNote.
type GroupContent struct{}

func (ColorContent) Type() NoteType    { return TypeColor }
func (CrossReference) Type() NoteType  { return TypeCrossReference }
func (Link) Type() NoteType            { return TypeLink }
func (HTMLContent) Type() NoteType     { return TypeHTML }
func (TextContent) Type() NoteType     { return TypeText }
func (FileContent) Type() NoteType     { return TypeFile }
func (ImageContent) Type() NoteType    { return TypeImage }
func (LauncherContent) Type() NoteType { return TypeLauncher }
func (SoundContent) Type() NoteType    { return TypeSound }
func (GroupContent) Type() NoteType    { return TypeGroup }

func (ColorContent) content()    {}
func (CrossReference) content()  {}
func (Link) content()            {}
func (HTMLContent) content()     {}
func (TextContent) content()     {}
func (FileContent) content()     {}
func (ImageContent) content()    {}
func (LauncherContent) content() {}
func (SoundContent) content()    {}
func (GroupContent) content()    {}

// SourcePath returns the embedded file of file-backed content.
func SourcePath(c Content) (string, bool) {
	switch v := c.(type) {
	case FileContent:
		return v.Path, true
	case ImageContent:
		return v.Path, true
	case LauncherContent:
		return v.Path, true
	case SoundContent:
		return v.Path, true
	}
	return "", false
}

// NewFile returns file content after checking path is an existing file.
func NewFile(path string) (FileContent, error) {
	if err := checkFile(path); err != nil {
		return FileContent{}, err
	}
	return FileContent{Path: path}, nil
}

// NewImage returns image content after checking path is an existing file.
func NewImage(path string) (ImageContent, error) {
	if err := checkFile(path); err != nil {
		return ImageContent{}, err
	}
	return ImageContent{Path: path}, nil
}

// NewLauncher returns launcher content after checking path is an existing file.
func NewLauncher(path string) (LauncherContent, error) {
	if err := checkFile(path); err != nil {
		return LauncherContent{}, err
	}
	return LauncherContent{Path: path}, nil
}

// NewSound returns sound content after checking path is an existing file.
func NewSound(path string) (SoundContent, error) {
	if err := checkFile(path); err != nil {
		return SoundContent{}, err
	}
	return SoundContent{Path: path}, nil
}

// NewContent builds content from an untyped payload, checking it against t:
//
//	TypeColor          Color
//	TypeCrossReference CrossReference
//	TypeFile, TypeImage, TypeLauncher, TypeSound  string path to an existing file
//	TypeGroup          nil
//	TypeHTML, TypeText string
//	TypeLink           Link
func NewContent(t NoteType, payload any) (Content, error) {
	mismatch := func() error {
		return fmt.Errorf("%w: %s note cannot hold %T", ErrContentMismatch, t, payload)
	}

	switch t {
	case TypeColor:
		if v, ok := payload.(Color); ok {
			return ColorContent{Color: v}, nil
		}
		return nil, mismatch()
	case TypeCrossReference:
		if v, ok := payload.(CrossReference); ok {
			return v, nil
		}
		return nil, mismatch()
	case TypeFile, TypeImage, TypeLauncher, TypeSound:
		path, ok := payload.(string)
		if !ok {
			return nil, mismatch()
		}
		if err := checkFile(path); err != nil {
			return nil, err
		}
		switch t {
		case TypeFile:
			return FileContent{Path: path}, nil
		case TypeImage:
			return ImageContent{Path: path}, nil
		case TypeLauncher:
			return LauncherContent{Path: path}, nil
		default:
			return SoundContent{Path: path}, nil
		}
	case TypeGroup:
		if payload != nil {
			return nil, mismatch()
		}
		return GroupContent{}, nil
	case TypeHTML:
		if v, ok := payload.(string); ok {
			return HTMLContent(v), nil
		}
		return nil, mismatch()
	case TypeText:
		if v, ok := payload.(string); ok {
			return TextContent(v), nil
		}
		return nil, mismatch()
	case TypeLink:
		if v, ok := payload.(Link); ok {
			return v, nil
		}
		return nil, mismatch()
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownNoteType, int(t))
}

func checkFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrFileNotFound, path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s is not a regular file", ErrFileNotFound, path)
	}
	return nil
}
