package commontags

import (
	"github.com/simonhull/commontags/internal/collector"
	"github.com/simonhull/commontags/internal/schema"
)

// SchemaVersion identifies the canonical key set.
const SchemaVersion = schema.SchemaVersion

// Metadata is the canonical metadata of one file.
type Metadata = collector.Metadata

// Key is a canonical tag key: a SingletonKey or a ListKey.
type Key = schema.Key

// SingletonKey is a canonical key holding at most one value.
type SingletonKey = schema.SingletonKey

// ListKey is a canonical key holding an ordered list of values.
type ListKey = schema.ListKey

// IsKnownKey reports whether name is a canonical key.
func IsKnownKey(name string) bool {
	return schema.IsKnownKey(name)
}

// IsSingleton reports whether the canonical key name holds one value. It
// returns an *UnknownKeyError for names outside the schema.
func IsSingleton(name string) (bool, error) {
	return schema.IsSingleton(name)
}

// AllKeys returns every canonical key sorted by name.
func AllKeys() []Key {
	return schema.AllKeys()
}

// Singleton keys.
const (
	KeyYear            = schema.Year
	KeyTrack           = schema.Track
	KeyDisk            = schema.Disk
	KeyTitle           = schema.Title
	KeyArtist          = schema.Artist
	KeyAlbumArtist     = schema.AlbumArtist
	KeyAlbum           = schema.Album
	KeyDate            = schema.Date
	KeyOriginalDate    = schema.OriginalDate
	KeyOriginalYear    = schema.OriginalYear
	KeyReleaseDate     = schema.ReleaseDate
	KeyGrouping        = schema.Grouping
	KeyDiscSubtitle    = schema.DiscSubtitle
	KeyTotalTracks     = schema.TotalTracks
	KeyTotalDiscs      = schema.TotalDiscs
	KeyCompilation     = schema.Compilation
	KeyBPM             = schema.BPM
	KeyMood            = schema.Mood
	KeyMedia           = schema.Media
	KeyReleaseStatus   = schema.ReleaseStatus
	KeyReleaseCountry  = schema.ReleaseCountry
	KeyScript          = schema.Script
	KeyLanguage        = schema.Language
	KeyCopyright       = schema.Copyright
	KeyLicense         = schema.License
	KeyEncodedBy       = schema.EncodedBy
	KeyEncoderSettings = schema.EncoderSettings
	KeyGapless         = schema.Gapless
	KeyBarcode         = schema.Barcode
	KeyASIN            = schema.ASIN
	KeyWebsite         = schema.Website
	KeyWork            = schema.Work
	KeyAlbumSort       = schema.AlbumSort
	KeyTitleSort       = schema.TitleSort
	KeyArtistSort      = schema.ArtistSort
	KeyAlbumArtistSort = schema.AlbumArtistSort
	KeyComposerSort    = schema.ComposerSort
	KeyOriginalAlbum   = schema.OriginalAlbum
	KeyOriginalArtist  = schema.OriginalArtist
	KeyMusicalKey      = schema.MusicalKey
	KeyAverageLevel    = schema.AverageLevel
	KeyPeakLevel       = schema.PeakLevel

	KeyTVShow      = schema.TVShow
	KeyTVShowSort  = schema.TVShowSort
	KeyTVSeason    = schema.TVSeason
	KeyTVEpisode   = schema.TVEpisode
	KeyTVEpisodeID = schema.TVEpisodeID
	KeyTVNetwork   = schema.TVNetwork

	KeyPodcast         = schema.Podcast
	KeyPodcastURL      = schema.PodcastURL
	KeyPodcastID       = schema.PodcastID
	KeyLongDescription = schema.LongDescription
	KeyHDVideo         = schema.HDVideo
	KeyMovement        = schema.Movement
	KeyMovementIndex   = schema.MovementIndex
	KeyMovementTotal   = schema.MovementTotal
	KeyShowMovement    = schema.ShowMovement
	KeyStik            = schema.Stik
	KeyPlayCounter     = schema.PlayCounter

	KeyMusicBrainzRecordingID    = schema.MusicBrainzRecordingID
	KeyMusicBrainzTrackID        = schema.MusicBrainzTrackID
	KeyMusicBrainzAlbumID        = schema.MusicBrainzAlbumID
	KeyMusicBrainzReleaseGroupID = schema.MusicBrainzReleaseGroupID
	KeyMusicBrainzWorkID         = schema.MusicBrainzWorkID
	KeyMusicBrainzTRMID          = schema.MusicBrainzTRMID
	KeyMusicBrainzDiscID         = schema.MusicBrainzDiscID
	KeyAcoustIDID                = schema.AcoustIDID
	KeyAcoustIDFingerprint       = schema.AcoustIDFingerprint
	KeyMusicIPPUID               = schema.MusicIPPUID
	KeyMusicIPFingerprint        = schema.MusicIPFingerprint

	KeyDiscogsReleaseID       = schema.DiscogsReleaseID
	KeyDiscogsLabelID         = schema.DiscogsLabelID
	KeyDiscogsMasterReleaseID = schema.DiscogsMasterReleaseID
	KeyDiscogsVotes           = schema.DiscogsVotes
	KeyDiscogsRating          = schema.DiscogsRating

	KeyReplayGainTrackGain   = schema.ReplayGainTrackGain
	KeyReplayGainTrackPeak   = schema.ReplayGainTrackPeak
	KeyReplayGainAlbumGain   = schema.ReplayGainAlbumGain
	KeyReplayGainAlbumPeak   = schema.ReplayGainAlbumPeak
	KeyReplayGainTrackMinMax = schema.ReplayGainTrackMinMax
	KeyReplayGainAlbumMinMax = schema.ReplayGainAlbumMinMax
	KeyReplayGainUndo        = schema.ReplayGainUndo
)

// List keys.
const (
	KeyArtists                  = schema.Artists
	KeyComment                  = schema.Comment
	KeyGenre                    = schema.Genre
	KeyPicture                  = schema.Picture
	KeyComposer                 = schema.Composer
	KeyLyrics                   = schema.Lyrics
	KeyLyricist                 = schema.Lyricist
	KeyWriter                   = schema.Writer
	KeyConductor                = schema.Conductor
	KeyRemixer                  = schema.Remixer
	KeyArranger                 = schema.Arranger
	KeyEngineer                 = schema.Engineer
	KeyProducer                 = schema.Producer
	KeyTechnician               = schema.Technician
	KeyDJMixer                  = schema.DJMixer
	KeyMixer                    = schema.Mixer
	KeyLabel                    = schema.Label
	KeySubtitle                 = schema.Subtitle
	KeyRating                   = schema.Rating
	KeyCatalogNumber            = schema.CatalogNumber
	KeyReleaseType              = schema.ReleaseType
	KeyISRC                     = schema.ISRC
	KeyMusicBrainzArtistID      = schema.MusicBrainzArtistID
	KeyMusicBrainzAlbumArtistID = schema.MusicBrainzAlbumArtistID
	KeyPerformerInstrument      = schema.PerformerInstrument
	KeyNotes                    = schema.Notes
	KeyDiscogsArtistID          = schema.DiscogsArtistID
	KeyDescription              = schema.Description
	KeyCategory                 = schema.Category
	KeyKeywords                 = schema.Keywords
)
