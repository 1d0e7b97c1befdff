package domain

// Store is the persistence capability set. Backends (in-memory, PostgreSQL) implement it
// and are injected into services, so route logic never depends on a concrete engine.
type Store interface {
	Users() UserRepository
	Organizations() OrganizationRepository
	Events() EventRepository
	Participants() EventParticipantRepository
	SavedOrganizations() SavedOrganizationRepository
}
