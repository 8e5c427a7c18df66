package tag

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bogem/id3v2/v2"
	flacpicture "github.com/go-flac/flacpicture/v2"
	flacvorbis "github.com/go-flac/flacvorbis/v2"
	flac "github.com/go-flac/go-flac/v2"
	mp4tag "github.com/zhaarey/go-mp4tag"
)

// Container extensions, without the leading dot
const (
	ContainerMP3     = "mp3"
	ContainerFLAC    = "flac"
	ContainerM4A     = "m4a"
	ContainerUnknown = ""
)

// containerForPath classifies an audio file by its extension. Paths with an
// unrecognized extension map to ContainerUnknown, for which both writers are
// no-ops.
func containerForPath(path string) string {
	switch strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".") {
	case ContainerMP3:
		return ContainerMP3
	case ContainerFLAC:
		return ContainerFLAC
	case ContainerM4A:
		return ContainerM4A
	default:
		return ContainerUnknown
	}
}

const coverMIME = "image/jpeg"
const coverDescription = "Cover"

// embedCover attaches the JPEG at imgPath as front-cover art inside the audio
// container at path. Unknown containers are a no-op.
func embedCover(path, imgPath, container string) error {
	data, err := os.ReadFile(imgPath)
	if err != nil {
		return fmt.Errorf("read cover image: %w", err)
	}

	switch container {
	case ContainerMP3:
		return embedCoverMP3(path, data)
	case ContainerFLAC:
		return embedCoverFLAC(path, data)
	case ContainerM4A:
		return embedCoverM4A(path, data)
	default:
		return nil
	}
}

// writeTags writes the mapped tag fields into the container at path. Unknown
// containers are a no-op.
func writeTags(path, container string, fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	switch container {
	case ContainerMP3:
		return writeTagsMP3(path, fields)
	case ContainerFLAC:
		return writeTagsFLAC(path, fields)
	case ContainerM4A:
		return writeTagsM4A(path, fields)
	default:
		return nil
	}
}

func embedCoverMP3(path string, data []byte) error {
	t, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("open id3 tag: %w", err)
	}
	defer t.Close()

	t.AddAttachedPicture(id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    coverMIME,
		PictureType: id3v2.PTFrontCover,
		Description: coverDescription,
		Picture:     data,
	})
	if err := t.Save(); err != nil {
		return fmt.Errorf("save id3 tag: %w", err)
	}
	return nil
}

func writeTagsMP3(path string, fields map[string]string) error {
	t, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("open id3 tag: %w", err)
	}
	defer t.Close()

	t.SetDefaultEncoding(id3v2.EncodingUTF8)
	for key, value := range fields {
		switch key {
		case FieldTitle:
			t.SetTitle(value)
		case FieldArtist:
			t.SetArtist(value)
		case FieldAlbum:
			t.SetAlbum(value)
		case FieldGenre:
			t.SetGenre(value)
		case FieldDate:
			t.AddTextFrame(t.CommonID("Recording time"), t.DefaultEncoding(), value)
		case FieldTrack:
			t.AddTextFrame(t.CommonID("Track number/Position in set"), t.DefaultEncoding(), value)
		}
	}
	if err := t.Save(); err != nil {
		return fmt.Errorf("save id3 tag: %w", err)
	}
	return nil
}

func embedCoverFLAC(path string, data []byte) error {
	f, err := flac.ParseFile(path)
	if err != nil {
		return fmt.Errorf("parse flac: %w", err)
	}
	pic, err := flacpicture.NewFromImageData(flacpicture.PictureTypeFrontCover, coverDescription, data, coverMIME)
	if err != nil {
		return fmt.Errorf("build flac picture: %w", err)
	}
	block := pic.Marshal()
	f.Meta = append(f.Meta, &block)
	if err := f.Save(path); err != nil {
		return fmt.Errorf("save flac: %w", err)
	}
	return nil
}

func writeTagsFLAC(path string, fields map[string]string) error {
	f, err := flac.ParseFile(path)
	if err != nil {
		return fmt.Errorf("parse flac: %w", err)
	}

	cmt := flacvorbis.New()
	vorbisField := map[string]string{
		FieldTitle:  flacvorbis.FIELD_TITLE,
		FieldArtist: flacvorbis.FIELD_ARTIST,
		FieldAlbum:  flacvorbis.FIELD_ALBUM,
		FieldGenre:  flacvorbis.FIELD_GENRE,
		FieldDate:   flacvorbis.FIELD_DATE,
		FieldTrack:  flacvorbis.FIELD_TRACKNUMBER,
	}
	for key, value := range fields {
		name, ok := vorbisField[key]
		if !ok {
			continue
		}
		if err := cmt.Add(name, value); err != nil {
			return fmt.Errorf("add vorbis comment: %w", err)
		}
	}

	// Replace any existing comment block with the new one.
	kept := f.Meta[:0]
	for _, block := range f.Meta {
		if block.Type != flac.VorbisComment {
			kept = append(kept, block)
		}
	}
	block := cmt.Marshal()
	f.Meta = append(kept, &block)

	if err := f.Save(path); err != nil {
		return fmt.Errorf("save flac: %w", err)
	}
	return nil
}

func embedCoverM4A(path string, data []byte) error {
	m, err := mp4tag.Open(path)
	if err != nil {
		return fmt.Errorf("open mp4: %w", err)
	}
	defer m.Close()

	tags := &mp4tag.MP4Tags{
		Pictures: []*mp4tag.MP4Picture{{Format: mp4tag.ImageTypeJPEG, Data: data}},
	}
	if err := m.Write(tags, nil); err != nil {
		return fmt.Errorf("write mp4 cover: %w", err)
	}
	return nil
}

func writeTagsM4A(path string, fields map[string]string) error {
	m, err := mp4tag.Open(path)
	if err != nil {
		return fmt.Errorf("open mp4: %w", err)
	}
	defer m.Close()

	tags := &mp4tag.MP4Tags{
		Title:       fields[FieldTitle],
		Artist:      fields[FieldArtist],
		Album:       fields[FieldAlbum],
		CustomGenre: fields[FieldGenre],
	}
	if year, err := strconv.Atoi(fields[FieldDate]); err == nil {
		tags.Year = int32(year)
	}
	if track, err := strconv.Atoi(fields[FieldTrack]); err == nil {
		tags.TrackNumber = int16(track)
	}
	if err := m.Write(tags, nil); err != nil {
		return fmt.Errorf("write mp4 tags: %w", err)
	}
	return nil
}
