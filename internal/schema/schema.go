// Package schema defines the closed set of canonical tag keys that every
// native tagging vocabulary is mapped onto.
package schema

import (
	"slices"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/simonhull/commontags/internal/types"
)

// SchemaVersion identifies the canonical key set. It changes whenever a key
// is added, removed, or changes multiplicity.
const SchemaVersion = 3

// Key is a canonical tag key. It is sealed: the only implementations are
// SingletonKey and ListKey, so every key statically carries its
// multiplicity.
type Key interface {
	Name() string
	isKey()
}

// SingletonKey is a canonical key holding at most one value. Ingesting a new
// value replaces the previous one.
type SingletonKey string

// Name returns the key's canonical name.
func (k SingletonKey) Name() string { return string(k) }
func (SingletonKey) isKey()         {}

// ListKey is a canonical key holding an ordered sequence of values.
// Ingesting a value appends it; duplicates are kept.
type ListKey string

// Name returns the key's canonical name.
func (k ListKey) Name() string { return string(k) }
func (ListKey) isKey()         {}

// Shape describes the Go value stored under a canonical key.
type Shape int

const (
	ShapeText      Shape = iota // text
	ShapeInt                    // int
	ShapeFloat                  // float
	ShapeBool                   // bool
	ShapePartOfSet              // part-of-set
	ShapePicture                // picture
	ShapeRating                 // rating
)

func (s Shape) String() string {
	switch s {
	case ShapeText:
		return "text"
	case ShapeInt:
		return "int"
	case ShapeFloat:
		return "float"
	case ShapeBool:
		return "bool"
	case ShapePartOfSet:
		return "part-of-set"
	case ShapePicture:
		return "picture"
	case ShapeRating:
		return "rating"
	default:
		return "unknown"
	}
}

// Singleton keys.
const (
	Year            SingletonKey = "year"
	Track           SingletonKey = "track"
	Disk            SingletonKey = "disk"
	Title           SingletonKey = "title"
	Artist          SingletonKey = "artist"
	AlbumArtist     SingletonKey = "albumartist"
	Album           SingletonKey = "album"
	Date            SingletonKey = "date"
	OriginalDate    SingletonKey = "originaldate"
	OriginalYear    SingletonKey = "originalyear"
	ReleaseDate     SingletonKey = "releasedate"
	Grouping        SingletonKey = "grouping"
	DiscSubtitle    SingletonKey = "discsubtitle"
	TotalTracks     SingletonKey = "totaltracks"
	TotalDiscs      SingletonKey = "totaldiscs"
	Compilation     SingletonKey = "compilation"
	BPM             SingletonKey = "bpm"
	Mood            SingletonKey = "mood"
	Media           SingletonKey = "media"
	ReleaseStatus   SingletonKey = "releasestatus"
	ReleaseCountry  SingletonKey = "releasecountry"
	Script          SingletonKey = "script"
	Language        SingletonKey = "language"
	Copyright       SingletonKey = "copyright"
	License         SingletonKey = "license"
	EncodedBy       SingletonKey = "encodedby"
	EncoderSettings SingletonKey = "encodersettings"
	Gapless         SingletonKey = "gapless"
	Barcode         SingletonKey = "barcode"
	ASIN            SingletonKey = "asin"
	Website         SingletonKey = "website"
	Work            SingletonKey = "work"
	AlbumSort       SingletonKey = "albumsort"
	TitleSort       SingletonKey = "titlesort"
	ArtistSort      SingletonKey = "artistsort"
	AlbumArtistSort SingletonKey = "albumartistsort"
	ComposerSort    SingletonKey = "composersort"
	OriginalAlbum   SingletonKey = "originalalbum"
	OriginalArtist  SingletonKey = "originalartist"
	MusicalKey      SingletonKey = "key"
	AverageLevel    SingletonKey = "averageLevel"
	PeakLevel       SingletonKey = "peakLevel"

	TVShow      SingletonKey = "tvShow"
	TVShowSort  SingletonKey = "tvShowSort"
	TVSeason    SingletonKey = "tvSeason"
	TVEpisode   SingletonKey = "tvEpisode"
	TVEpisodeID SingletonKey = "tvEpisodeId"
	TVNetwork   SingletonKey = "tvNetwork"

	Podcast         SingletonKey = "podcast"
	PodcastURL      SingletonKey = "podcasturl"
	PodcastID       SingletonKey = "podcastId"
	LongDescription SingletonKey = "longDescription"
	HDVideo         SingletonKey = "hdVideo"
	Movement        SingletonKey = "movement"
	MovementIndex   SingletonKey = "movementIndex"
	MovementTotal   SingletonKey = "movementTotal"
	ShowMovement    SingletonKey = "showMovement"
	Stik            SingletonKey = "stik"
	PlayCounter     SingletonKey = "playCounter"

	MusicBrainzRecordingID    SingletonKey = "musicbrainz_recordingid"
	MusicBrainzTrackID        SingletonKey = "musicbrainz_trackid"
	MusicBrainzAlbumID        SingletonKey = "musicbrainz_albumid"
	MusicBrainzReleaseGroupID SingletonKey = "musicbrainz_releasegroupid"
	MusicBrainzWorkID         SingletonKey = "musicbrainz_workid"
	MusicBrainzTRMID          SingletonKey = "musicbrainz_trmid"
	MusicBrainzDiscID         SingletonKey = "musicbrainz_discid"
	AcoustIDID                SingletonKey = "acoustid_id"
	AcoustIDFingerprint       SingletonKey = "acoustid_fingerprint"
	MusicIPPUID               SingletonKey = "musicip_puid"
	MusicIPFingerprint        SingletonKey = "musicip_fingerprint"

	DiscogsReleaseID       SingletonKey = "discogs_release_id"
	DiscogsLabelID         SingletonKey = "discogs_label_id"
	DiscogsMasterReleaseID SingletonKey = "discogs_master_release_id"
	DiscogsVotes           SingletonKey = "discogs_votes"
	DiscogsRating          SingletonKey = "discogs_rating"

	ReplayGainTrackGain   SingletonKey = "replaygain_track_gain"
	ReplayGainTrackPeak   SingletonKey = "replaygain_track_peak"
	ReplayGainAlbumGain   SingletonKey = "replaygain_album_gain"
	ReplayGainAlbumPeak   SingletonKey = "replaygain_album_peak"
	ReplayGainTrackMinMax SingletonKey = "replaygain_track_minmax"
	ReplayGainAlbumMinMax SingletonKey = "replaygain_album_minmax"
	ReplayGainUndo        SingletonKey = "replaygain_undo"
)

// List keys.
const (
	Artists                  ListKey = "artists"
	Comment                  ListKey = "comment"
	Genre                    ListKey = "genre"
	Picture                  ListKey = "picture"
	Composer                 ListKey = "composer"
	Lyrics                   ListKey = "lyrics"
	Lyricist                 ListKey = "lyricist"
	Writer                   ListKey = "writer"
	Conductor                ListKey = "conductor"
	Remixer                  ListKey = "remixer"
	Arranger                 ListKey = "arranger"
	Engineer                 ListKey = "engineer"
	Producer                 ListKey = "producer"
	Technician               ListKey = "technician"
	DJMixer                  ListKey = "djmixer"
	Mixer                    ListKey = "mixer"
	Label                    ListKey = "label"
	Subtitle                 ListKey = "subtitle"
	Rating                   ListKey = "rating"
	CatalogNumber            ListKey = "catalognumber"
	ReleaseType              ListKey = "releasetype"
	ISRC                     ListKey = "isrc"
	MusicBrainzArtistID      ListKey = "musicbrainz_artistid"
	MusicBrainzAlbumArtistID ListKey = "musicbrainz_albumartistid"
	PerformerInstrument      ListKey = "performer:instrument"
	Notes                    ListKey = "notes"
	DiscogsArtistID          ListKey = "discogs_artist_id"
	Description              ListKey = "description"
	Category                 ListKey = "category"
	Keywords                 ListKey = "keywords"
)

type keyInfo struct {
	key   Key
	shape Shape
}

// schema is the closed canonical key set. It is built at package init and
// never mutated afterwards.
var schema = buildSchema(
	keyInfo{Year, ShapeInt},
	keyInfo{Track, ShapePartOfSet},
	keyInfo{Disk, ShapePartOfSet},
	keyInfo{Title, ShapeText},
	keyInfo{Artist, ShapeText},
	keyInfo{AlbumArtist, ShapeText},
	keyInfo{Album, ShapeText},
	keyInfo{Date, ShapeText},
	keyInfo{OriginalDate, ShapeText},
	keyInfo{OriginalYear, ShapeInt},
	keyInfo{ReleaseDate, ShapeText},
	keyInfo{Grouping, ShapeText},
	keyInfo{DiscSubtitle, ShapeText},
	keyInfo{TotalTracks, ShapeInt},
	keyInfo{TotalDiscs, ShapeInt},
	keyInfo{Compilation, ShapeBool},
	keyInfo{BPM, ShapeFloat},
	keyInfo{Mood, ShapeText},
	keyInfo{Media, ShapeText},
	keyInfo{ReleaseStatus, ShapeText},
	keyInfo{ReleaseCountry, ShapeText},
	keyInfo{Script, ShapeText},
	keyInfo{Language, ShapeText},
	keyInfo{Copyright, ShapeText},
	keyInfo{License, ShapeText},
	keyInfo{EncodedBy, ShapeText},
	keyInfo{EncoderSettings, ShapeText},
	keyInfo{Gapless, ShapeBool},
	keyInfo{Barcode, ShapeText},
	keyInfo{ASIN, ShapeText},
	keyInfo{Website, ShapeText},
	keyInfo{Work, ShapeText},
	keyInfo{AlbumSort, ShapeText},
	keyInfo{TitleSort, ShapeText},
	keyInfo{ArtistSort, ShapeText},
	keyInfo{AlbumArtistSort, ShapeText},
	keyInfo{ComposerSort, ShapeText},
	keyInfo{OriginalAlbum, ShapeText},
	keyInfo{OriginalArtist, ShapeText},
	keyInfo{MusicalKey, ShapeText},
	keyInfo{AverageLevel, ShapeInt},
	keyInfo{PeakLevel, ShapeInt},
	keyInfo{TVShow, ShapeText},
	keyInfo{TVShowSort, ShapeText},
	keyInfo{TVSeason, ShapeInt},
	keyInfo{TVEpisode, ShapeInt},
	keyInfo{TVEpisodeID, ShapeText},
	keyInfo{TVNetwork, ShapeText},
	keyInfo{Podcast, ShapeBool},
	keyInfo{PodcastURL, ShapeText},
	keyInfo{PodcastID, ShapeText},
	keyInfo{LongDescription, ShapeText},
	keyInfo{HDVideo, ShapeInt},
	keyInfo{Movement, ShapeText},
	keyInfo{MovementIndex, ShapePartOfSet},
	keyInfo{MovementTotal, ShapeInt},
	keyInfo{ShowMovement, ShapeBool},
	keyInfo{Stik, ShapeInt},
	keyInfo{PlayCounter, ShapeInt},
	keyInfo{MusicBrainzRecordingID, ShapeText},
	keyInfo{MusicBrainzTrackID, ShapeText},
	keyInfo{MusicBrainzAlbumID, ShapeText},
	keyInfo{MusicBrainzReleaseGroupID, ShapeText},
	keyInfo{MusicBrainzWorkID, ShapeText},
	keyInfo{MusicBrainzTRMID, ShapeText},
	keyInfo{MusicBrainzDiscID, ShapeText},
	keyInfo{AcoustIDID, ShapeText},
	keyInfo{AcoustIDFingerprint, ShapeText},
	keyInfo{MusicIPPUID, ShapeText},
	keyInfo{MusicIPFingerprint, ShapeText},
	keyInfo{DiscogsReleaseID, ShapeInt},
	keyInfo{DiscogsLabelID, ShapeInt},
	keyInfo{DiscogsMasterReleaseID, ShapeInt},
	keyInfo{DiscogsVotes, ShapeInt},
	keyInfo{DiscogsRating, ShapeFloat},
	keyInfo{ReplayGainTrackGain, ShapeFloat},
	keyInfo{ReplayGainTrackPeak, ShapeFloat},
	keyInfo{ReplayGainAlbumGain, ShapeFloat},
	keyInfo{ReplayGainAlbumPeak, ShapeFloat},
	keyInfo{ReplayGainTrackMinMax, ShapeText},
	keyInfo{ReplayGainAlbumMinMax, ShapeText},
	keyInfo{ReplayGainUndo, ShapeText},

	keyInfo{Artists, ShapeText},
	keyInfo{Comment, ShapeText},
	keyInfo{Genre, ShapeText},
	keyInfo{Picture, ShapePicture},
	keyInfo{Composer, ShapeText},
	keyInfo{Lyrics, ShapeText},
	keyInfo{Lyricist, ShapeText},
	keyInfo{Writer, ShapeText},
	keyInfo{Conductor, ShapeText},
	keyInfo{Remixer, ShapeText},
	keyInfo{Arranger, ShapeText},
	keyInfo{Engineer, ShapeText},
	keyInfo{Producer, ShapeText},
	keyInfo{Technician, ShapeText},
	keyInfo{DJMixer, ShapeText},
	keyInfo{Mixer, ShapeText},
	keyInfo{Label, ShapeText},
	keyInfo{Subtitle, ShapeText},
	keyInfo{Rating, ShapeRating},
	keyInfo{CatalogNumber, ShapeText},
	keyInfo{ReleaseType, ShapeText},
	keyInfo{ISRC, ShapeText},
	keyInfo{MusicBrainzArtistID, ShapeText},
	keyInfo{MusicBrainzAlbumArtistID, ShapeText},
	keyInfo{PerformerInstrument, ShapeText},
	keyInfo{Notes, ShapeText},
	keyInfo{DiscogsArtistID, ShapeInt},
	keyInfo{Description, ShapeText},
	keyInfo{Category, ShapeText},
	keyInfo{Keywords, ShapeText},
)

func buildSchema(infos ...keyInfo) map[string]keyInfo {
	m := make(map[string]keyInfo, len(infos))
	for _, info := range infos {
		name := info.key.Name()
		if _, dup := m[name]; dup {
			panic("schema: canonical key declared twice: " + name)
		}
		m[name] = info
	}
	return m
}

// IsKnownKey reports whether name is a canonical key.
func IsKnownKey(name string) bool {
	_, ok := schema[name]
	return ok
}

// IsSingleton reports whether the canonical key name holds a single value.
// It returns a *types.UnknownKeyError if name is not a canonical key.
func IsSingleton(name string) (bool, error) {
	info, ok := schema[name]
	if !ok {
		return false, &types.UnknownKeyError{Name: name, Suggestions: Suggest(name)}
	}
	_, single := info.key.(SingletonKey)
	return single, nil
}

// Lookup returns the canonical key registered under name.
func Lookup(name string) (Key, bool) {
	info, ok := schema[name]
	if !ok {
		return nil, false
	}
	return info.key, true
}

// Registered reports whether k is the registered key of its name and
// multiplicity. A key built by converting an arbitrary string is not.
func Registered(k Key) bool {
	if k == nil {
		return false
	}
	info, ok := schema[k.Name()]
	return ok && info.key == k
}

// ShapeOf returns the value shape declared for k. Unregistered keys are
// treated as text.
func ShapeOf(k Key) Shape {
	if info, ok := schema[k.Name()]; ok {
		return info.shape
	}
	return ShapeText
}

// AllKeys returns every canonical key sorted by name.
func AllKeys() []Key {
	keys := make([]Key, 0, len(schema))
	for _, info := range schema {
		keys = append(keys, info.key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Name() < keys[j].Name() })
	return keys
}

// Suggest returns canonical key names resembling name, best match first.
func Suggest(name string) []string {
	if name == "" {
		return nil
	}
	names := make([]string, 0, len(schema))
	for n := range schema {
		names = append(names, n)
	}
	slices.Sort(names)

	ranks := fuzzy.RankFindNormalizedFold(name, names)
	for _, n := range names {
		d := fuzzy.LevenshteinDistance(strings.ToLower(name), strings.ToLower(n))
		if d <= 2 && !slices.ContainsFunc(ranks, func(r fuzzy.Rank) bool { return r.Target == n }) {
			ranks = append(ranks, fuzzy.Rank{Source: name, Target: n, Distance: d})
		}
	}
	sort.Stable(ranks)

	var out []string
	for _, r := range ranks {
		out = append(out, r.Target)
		if len(out) == 3 {
			break
		}
	}
	return out
}
