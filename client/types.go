package client

import "time"

// 服务端下发的反规范化引用

type UserRef struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
}

type MemberUserRef struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type CampaignRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Campaign struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	Location      string    `json:"location"`
	Status        string    `json:"status"`
	CreatedBy     string    `json:"createdBy"`
	CoverImage    string    `json:"coverImage,omitempty"`
	Objectives    []string  `json:"objectives"`
	Requirements  []string  `json:"requirements"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	CreatedByUser *UserRef  `json:"createdByUser,omitempty"`
}

type Activity struct {
	ID               string    `json:"id"`
	Campaign         string    `json:"campaign"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	StartTime        time.Time `json:"startTime"`
	EndTime          time.Time `json:"endTime"`
	Location         string    `json:"location"`
	Organizer        string    `json:"organizer"`
	Participants     []string  `json:"participants"`
	Status           string    `json:"status"`
	Requirements     []string  `json:"requirements"`
	Images           []string  `json:"images,omitempty"`
	Notes            string    `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
	OrganizerUser    *UserRef  `json:"organizerUser,omitempty"`
	ParticipantUsers []UserRef `json:"participantUsers"`
}

type Task struct {
	ID              string    `json:"id"`
	Campaign        string    `json:"campaign"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	AssignedTo      string    `json:"assignedTo,omitempty"`
	AssignedBy      string    `json:"assignedBy"`
	DueDate         time.Time `json:"dueDate"`
	Status          string    `json:"status"`
	Priority        string    `json:"priority"`
	CompletionNotes string    `json:"completionNotes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
	AssignedToUser  *UserRef  `json:"assignedToUser,omitempty"`
	AssignedByUser  *UserRef  `json:"assignedByUser,omitempty"`
}

type Member struct {
	ID               string         `json:"id"`
	User             string         `json:"user"`
	Campaign         string         `json:"campaign"`
	Role             string         `json:"role"`
	JoinedDate       time.Time      `json:"joinedDate"`
	Responsibilities []string       `json:"responsibilities"`
	Status           string         `json:"status"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
	UserInfo         *MemberUserRef `json:"userInfo,omitempty"`
	CampaignInfo     *CampaignRef   `json:"campaignInfo,omitempty"`
}

// 写请求的入参

type RegisterUserInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`
}

type CreateCampaignInput struct {
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	Location     string    `json:"location"`
	Status       string    `json:"status,omitempty"`
	Objectives   []string  `json:"objectives,omitempty"`
	Requirements []string  `json:"requirements,omitempty"`
	CoverImage   string    `json:"coverImage,omitempty"`
}

// CampaignPatch nil 字段不发送，服务端只改提供的字段
type CampaignPatch struct {
	Name         *string    `json:"name,omitempty"`
	Description  *string    `json:"description,omitempty"`
	StartDate    *time.Time `json:"startDate,omitempty"`
	EndDate      *time.Time `json:"endDate,omitempty"`
	Location     *string    `json:"location,omitempty"`
	Status       *string    `json:"status,omitempty"`
	Objectives   *[]string  `json:"objectives,omitempty"`
	Requirements *[]string  `json:"requirements,omitempty"`
	CoverImage   *string    `json:"coverImage,omitempty"`
	IsActive     *bool      `json:"isActive,omitempty"`
}

type CreateActivityInput struct {
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	Location     string    `json:"location"`
	Status       string    `json:"status,omitempty"`
	Requirements []string  `json:"requirements,omitempty"`
	Images       []string  `json:"images,omitempty"`
	Notes        string    `json:"notes,omitempty"`
}

type ActivityPatch struct {
	Name         *string    `json:"name,omitempty"`
	Description  *string    `json:"description,omitempty"`
	StartTime    *time.Time `json:"startTime,omitempty"`
	EndTime      *time.Time `json:"endTime,omitempty"`
	Location     *string    `json:"location,omitempty"`
	Status       *string    `json:"status,omitempty"`
	Requirements *[]string  `json:"requirements,omitempty"`
	Images       *[]string  `json:"images,omitempty"`
	Notes        *string    `json:"notes,omitempty"`
}

type CreateTaskInput struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	AssignedTo  string    `json:"assignedTo,omitempty"`
	DueDate     time.Time `json:"dueDate"`
	Status      string    `json:"status,omitempty"`
	Priority    string    `json:"priority,omitempty"`
}

type TaskPatch struct {
	Title           *string    `json:"title,omitempty"`
	Description     *string    `json:"description,omitempty"`
	AssignedTo      *string    `json:"assignedTo,omitempty"`
	DueDate         *time.Time `json:"dueDate,omitempty"`
	Status          *string    `json:"status,omitempty"`
	Priority        *string    `json:"priority,omitempty"`
	CompletionNotes *string    `json:"completionNotes,omitempty"`
}

type AddMemberInput struct {
	UserID           string   `json:"userId"`
	Role             string   `json:"role,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
}

type MemberPatch struct {
	Role             *string   `json:"role,omitempty"`
	Responsibilities *[]string `json:"responsibilities,omitempty"`
	Status           *string   `json:"status,omitempty"`
}
