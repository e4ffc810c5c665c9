package store

// Schema DDL for the volunteer-management tables. Statements are authored in
// SQLite syntax and translated per engine at execution time. The layer only
// ever creates these tables; it never drops or alters them.
const (
	createOrganizationSettings = `CREATE TABLE IF NOT EXISTS organization_settings (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    singleton INTEGER NOT NULL DEFAULT 1 UNIQUE,
    name VARCHAR(191) NOT NULL,
    description TEXT,
    contact_email VARCHAR(191),
    website VARCHAR(191),
    instance_id VARCHAR(36) NOT NULL,
    created_at DATETIME NOT NULL
);`

	createAdministrators = `CREATE TABLE IF NOT EXISTS administrators (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    email VARCHAR(191) NOT NULL UNIQUE,
    full_name VARCHAR(191) NOT NULL,
    password_hash VARCHAR(191) NOT NULL,
    role VARCHAR(32) NOT NULL,
    created_at DATETIME NOT NULL
);`

	createVolunteers = `CREATE TABLE IF NOT EXISTS volunteers (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    email VARCHAR(191) NOT NULL UNIQUE,
    full_name VARCHAR(191) NOT NULL,
    phone VARCHAR(32),
    city VARCHAR(128),
    birth_date DATETIME,
    points INTEGER NOT NULL DEFAULT 0,
    active INTEGER NOT NULL DEFAULT 1,
    created_at DATETIME NOT NULL
);`

	createSkills = `CREATE TABLE IF NOT EXISTS skills (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name VARCHAR(128) NOT NULL UNIQUE,
    description TEXT
);`

	createVolunteerSkills = `CREATE TABLE IF NOT EXISTS volunteer_skills (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    volunteer_id INTEGER NOT NULL,
    skill_id INTEGER NOT NULL,
    level INTEGER NOT NULL DEFAULT 1,
    FOREIGN KEY (volunteer_id) REFERENCES volunteers(id),
    FOREIGN KEY (skill_id) REFERENCES skills(id)
);`

	createAvailability = `CREATE TABLE IF NOT EXISTS availability (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    volunteer_id INTEGER NOT NULL,
    weekday INTEGER NOT NULL,
    start_hour INTEGER NOT NULL,
    end_hour INTEGER NOT NULL,
    FOREIGN KEY (volunteer_id) REFERENCES volunteers(id)
);`

	createBadges = `CREATE TABLE IF NOT EXISTS badges (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name VARCHAR(128) NOT NULL UNIQUE,
    description TEXT,
    icon VARCHAR(191),
    threshold INTEGER NOT NULL DEFAULT 0
);`

	createVolunteerBadges = `CREATE TABLE IF NOT EXISTS volunteer_badges (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    volunteer_id INTEGER NOT NULL,
    badge_id INTEGER NOT NULL,
    awarded_at DATETIME NOT NULL,
    FOREIGN KEY (volunteer_id) REFERENCES volunteers(id),
    FOREIGN KEY (badge_id) REFERENCES badges(id)
);`

	createPointsLedger = `CREATE TABLE IF NOT EXISTS points_ledger (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    volunteer_id INTEGER NOT NULL,
    delta INTEGER NOT NULL,
    reason VARCHAR(191) NOT NULL,
    created_at DATETIME NOT NULL,
    FOREIGN KEY (volunteer_id) REFERENCES volunteers(id)
);`

	createTeams = `CREATE TABLE IF NOT EXISTS teams (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name VARCHAR(128) NOT NULL UNIQUE,
    description TEXT,
    created_at DATETIME NOT NULL
);`

	createTeamMembers = `CREATE TABLE IF NOT EXISTS team_members (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    team_id INTEGER NOT NULL,
    volunteer_id INTEGER NOT NULL,
    joined_at DATETIME NOT NULL,
    FOREIGN KEY (team_id) REFERENCES teams(id),
    FOREIGN KEY (volunteer_id) REFERENCES volunteers(id)
);`

	createCampaigns = `CREATE TABLE IF NOT EXISTS campaigns (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    slug VARCHAR(191) NOT NULL UNIQUE,
    title VARCHAR(191) NOT NULL,
    description TEXT,
    status VARCHAR(32) NOT NULL,
    goal_amount REAL,
    created_by INTEGER,
    starts_at DATETIME,
    ends_at DATETIME,
    created_at DATETIME NOT NULL,
    FOREIGN KEY (created_by) REFERENCES administrators(id)
);`

	createCampaignSignups = `CREATE TABLE IF NOT EXISTS campaign_signups (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    campaign_id INTEGER NOT NULL,
    volunteer_id INTEGER NOT NULL,
    status VARCHAR(32) NOT NULL,
    signed_up_at DATETIME NOT NULL,
    FOREIGN KEY (campaign_id) REFERENCES campaigns(id),
    FOREIGN KEY (volunteer_id) REFERENCES volunteers(id)
);`

	createCampaignUpdates = `CREATE TABLE IF NOT EXISTS campaign_updates (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    campaign_id INTEGER NOT NULL,
    title VARCHAR(191) NOT NULL,
    body TEXT,
    posted_at DATETIME NOT NULL,
    FOREIGN KEY (campaign_id) REFERENCES campaigns(id)
);`

	createEvents = `CREATE TABLE IF NOT EXISTS events (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    campaign_id INTEGER,
    title VARCHAR(191) NOT NULL,
    location VARCHAR(191),
    capacity INTEGER,
    starts_at DATETIME NOT NULL,
    ends_at DATETIME,
    FOREIGN KEY (campaign_id) REFERENCES campaigns(id)
);`

	createEventAttendance = `CREATE TABLE IF NOT EXISTS event_attendance (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    event_id INTEGER NOT NULL,
    volunteer_id INTEGER NOT NULL,
    checked_in_at DATETIME,
    FOREIGN KEY (event_id) REFERENCES events(id),
    FOREIGN KEY (volunteer_id) REFERENCES volunteers(id)
);`

	createHoursLog = `CREATE TABLE IF NOT EXISTS hours_log (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    volunteer_id INTEGER NOT NULL,
    campaign_id INTEGER,
    hours REAL NOT NULL,
    logged_on DATETIME NOT NULL,
    approved INTEGER NOT NULL DEFAULT 0,
    FOREIGN KEY (volunteer_id) REFERENCES volunteers(id),
    FOREIGN KEY (campaign_id) REFERENCES campaigns(id)
);`

	createChats = `CREATE TABLE IF NOT EXISTS chats (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name VARCHAR(191),
    is_group INTEGER NOT NULL DEFAULT 0,
    created_at DATETIME NOT NULL
);`

	createChatMembers = `CREATE TABLE IF NOT EXISTS chat_members (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    chat_id INTEGER NOT NULL,
    volunteer_id INTEGER NOT NULL,
    joined_at DATETIME NOT NULL,
    FOREIGN KEY (chat_id) REFERENCES chats(id),
    FOREIGN KEY (volunteer_id) REFERENCES volunteers(id)
);`

	createChatMessages = `CREATE TABLE IF NOT EXISTS chat_messages (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    chat_id INTEGER NOT NULL,
    sender_id INTEGER NOT NULL,
    body TEXT NOT NULL,
    sent_at DATETIME NOT NULL,
    FOREIGN KEY (chat_id) REFERENCES chats(id),
    FOREIGN KEY (sender_id) REFERENCES volunteers(id)
);`

	createCourses = `CREATE TABLE IF NOT EXISTS courses (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title VARCHAR(191) NOT NULL,
    description TEXT,
    published INTEGER NOT NULL DEFAULT 0,
    created_at DATETIME NOT NULL
);`

	createCourseLessons = `CREATE TABLE IF NOT EXISTS course_lessons (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    course_id INTEGER NOT NULL,
    title VARCHAR(191) NOT NULL,
    content TEXT,
    ordinal INTEGER NOT NULL,
    FOREIGN KEY (course_id) REFERENCES courses(id)
);`

	createCourseEnrollments = `CREATE TABLE IF NOT EXISTS course_enrollments (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    course_id INTEGER NOT NULL,
    volunteer_id INTEGER NOT NULL,
    enrolled_at DATETIME NOT NULL,
    completed_at DATETIME,
    FOREIGN KEY (course_id) REFERENCES courses(id),
    FOREIGN KEY (volunteer_id) REFERENCES volunteers(id)
);`

	createLessonProgress = `CREATE TABLE IF NOT EXISTS lesson_progress (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    lesson_id INTEGER NOT NULL,
    volunteer_id INTEGER NOT NULL,
    completed_at DATETIME NOT NULL,
    FOREIGN KEY (lesson_id) REFERENCES course_lessons(id),
    FOREIGN KEY (volunteer_id) REFERENCES volunteers(id)
);`

	createDonations = `CREATE TABLE IF NOT EXISTS donations (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    campaign_id INTEGER,
    volunteer_id INTEGER,
    donor_name VARCHAR(191),
    amount REAL NOT NULL,
    currency VARCHAR(8) NOT NULL,
    donated_at DATETIME NOT NULL,
    FOREIGN KEY (campaign_id) REFERENCES campaigns(id),
    FOREIGN KEY (volunteer_id) REFERENCES volunteers(id)
);`

	createAnnouncements = `CREATE TABLE IF NOT EXISTS announcements (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    author_id INTEGER,
    title VARCHAR(191) NOT NULL,
    body TEXT,
    published_at DATETIME,
    FOREIGN KEY (author_id) REFERENCES administrators(id)
);`

	createNotifications = `CREATE TABLE IF NOT EXISTS notifications (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    volunteer_id INTEGER NOT NULL,
    kind VARCHAR(64) NOT NULL,
    payload TEXT,
    read_at DATETIME,
    created_at DATETIME NOT NULL,
    FOREIGN KEY (volunteer_id) REFERENCES volunteers(id)
);`

	createDeviceTokens = `CREATE TABLE IF NOT EXISTS device_tokens (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    volunteer_id INTEGER NOT NULL,
    token VARCHAR(191) NOT NULL UNIQUE,
    platform VARCHAR(32) NOT NULL,
    registered_at DATETIME NOT NULL,
    FOREIGN KEY (volunteer_id) REFERENCES volunteers(id)
);`

	createAttachments = `CREATE TABLE IF NOT EXISTS attachments (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    owner_table VARCHAR(64) NOT NULL,
    owner_id INTEGER NOT NULL,
    file_name VARCHAR(191) NOT NULL,
    content_type VARCHAR(128),
    size_bytes INTEGER,
    uploaded_at DATETIME NOT NULL
);`

	createFeedback = `CREATE TABLE IF NOT EXISTS feedback (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    volunteer_id INTEGER,
    subject VARCHAR(191) NOT NULL,
    body TEXT,
    rating INTEGER,
    submitted_at DATETIME NOT NULL,
    FOREIGN KEY (volunteer_id) REFERENCES volunteers(id)
);`

	createAuditLog = `CREATE TABLE IF NOT EXISTS audit_log (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    actor VARCHAR(191),
    action VARCHAR(128) NOT NULL,
    target VARCHAR(191),
    detail TEXT,
    occurred_at DATETIME NOT NULL
);`
)

// tableDef pairs a table name with its DDL statement.
type tableDef struct {
	name string
	ddl  string
}

// schemaTables lists all CREATE TABLE statements in dependency order:
// referenced tables appear before their foreign-key referrers, so creation
// never fails on a missing reference.
var schemaTables = []tableDef{
	{"organization_settings", createOrganizationSettings},
	{"administrators", createAdministrators},
	{"volunteers", createVolunteers},
	{"skills", createSkills},
	{"volunteer_skills", createVolunteerSkills},
	{"availability", createAvailability},
	{"badges", createBadges},
	{"volunteer_badges", createVolunteerBadges},
	{"points_ledger", createPointsLedger},
	{"teams", createTeams},
	{"team_members", createTeamMembers},
	{"campaigns", createCampaigns},
	{"campaign_signups", createCampaignSignups},
	{"campaign_updates", createCampaignUpdates},
	{"events", createEvents},
	{"event_attendance", createEventAttendance},
	{"hours_log", createHoursLog},
	{"chats", createChats},
	{"chat_members", createChatMembers},
	{"chat_messages", createChatMessages},
	{"courses", createCourses},
	{"course_lessons", createCourseLessons},
	{"course_enrollments", createCourseEnrollments},
	{"lesson_progress", createLessonProgress},
	{"donations", createDonations},
	{"announcements", createAnnouncements},
	{"notifications", createNotifications},
	{"device_tokens", createDeviceTokens},
	{"attachments", createAttachments},
	{"feedback", createFeedback},
	{"audit_log", createAuditLog},
}

// indexDDL lists secondary indexes, created after all tables. MySQL has no
// IF NOT EXISTS for indexes, so re-initialization relies on the
// already-exists errors being swallowed.
var indexDDL = []string{
	`CREATE INDEX idx_campaign_signups_campaign ON campaign_signups(campaign_id);`,
	`CREATE INDEX idx_campaign_signups_volunteer ON campaign_signups(volunteer_id);`,
	`CREATE INDEX idx_chat_messages_chat ON chat_messages(chat_id);`,
	`CREATE INDEX idx_points_ledger_volunteer ON points_ledger(volunteer_id);`,
	`CREATE INDEX idx_notifications_volunteer ON notifications(volunteer_id);`,
	`CREATE INDEX idx_donations_campaign ON donations(campaign_id);`,
	`CREATE INDEX idx_hours_log_volunteer ON hours_log(volunteer_id);`,
	`CREATE INDEX idx_event_attendance_event ON event_attendance(event_id);`,
}
