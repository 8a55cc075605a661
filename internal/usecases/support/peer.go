package support

import "strings"

// renderPeerSupport builds the response for peer_support_connection.
func renderPeerSupport(args peerArgs) string {
	var b strings.Builder

	b.WriteString("🤝 Peer Support\n\n")
	b.WriteString(lookupOr(connectionIntros, args.ConnectionType, connectionIntros[defaultConnectionType]))
	b.WriteString("\n\n")
	b.WriteString(lookupOr(peerStories, args.ChallengeCategory, fallbackPeerStory))
	b.WriteString("\n\n")
	b.WriteString("You're far from the only one who's been here. Take whatever pieces of this are useful and leave the rest.")

	return b.String()
}
