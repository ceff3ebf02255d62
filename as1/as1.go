// Package as1 models ActivityStreams 1.0 objects and activities, the generic
// representation that granary converts to and from, and provides the
// accessors and text helpers the converters share.
//
// http://activitystrea.ms/specs/json/1.0/
package as1

// Verbs.
const (
	VerbPost   = "post"
	VerbShare  = "share"
	VerbFollow = "follow"
)

// Object types.
const (
	TypeActivity     = "activity"
	TypeApplication  = "application"
	TypeArticle      = "article"
	TypeComment      = "comment"
	TypeFeatured     = "featured"
	TypeGroup        = "group"
	TypeImage        = "image"
	TypeMention      = "mention"
	TypeNote         = "note"
	TypeOrganization = "organization"
	TypePerson       = "person"
	TypePlace        = "place"
	TypeService      = "service"
)

var actorTypes = map[string]bool{
	TypeApplication:  true,
	TypeGroup:        true,
	TypeOrganization: true,
	TypePerson:       true,
	TypeService:      true,
}

// IsActorType reports whether objectType names something that can act: a
// person, group, organization, application or service.
func IsActorType(objectType string) bool {
	return actorTypes[objectType]
}

// VerbOrDefault returns the object's verb, or "post" if it has none.
func (o *Object) VerbOrDefault() string {
	if o == nil || o.Verb == "" {
		return VerbPost
	}
	return o.Verb
}

// TypeOrDefault returns the object's objectType, or "note" if it has none.
func (o *Object) TypeOrDefault() string {
	if o == nil || o.ObjectType == "" {
		return TypeNote
	}
	return o.ObjectType
}
