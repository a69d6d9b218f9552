package render

// 时间线片段：整体替换式渲染，空集合渲染显式的空状态
const timelineTemplate = `{{if .Posts}}{{range .Posts}}<article class="tweet" data-post-id="{{.ID}}">
    <div class="tweet-avatar">
        <div class="avatar"></div>
    </div>
    <div class="tweet-content">
        <div class="tweet-header">
            <span class="tweet-author">{{authorName .User}}</span>
            <span class="tweet-username">@{{.User.Username}}</span>
            <span class="tweet-time">&middot; {{timeago .CreatedAt}}</span>
            {{if .IsEdited}}<span class="tweet-edited">(editado)</span>{{end}}
        </div>
        <p class="tweet-text">{{.Content}}</p>
        <div class="tweet-actions">
            <form method="post" action="/posts/{{.ID}}/reply"><button class="action-button reply-button">&#128172; <span>{{.RepliesCount}}</span></button></form>
            <form method="post" action="/posts/{{.ID}}/retweet"><button class="action-button retweet-button">&#128260; <span>{{.RetweetsCount}}</span></button></form>
            <form method="post" action="/posts/{{.ID}}/like"><button class="action-button like-button">&#10084; <span>{{.LikesCount}}</span></button></form>
            <form method="post" action="/posts/{{.ID}}/delete"><button class="action-button delete-button" title="Eliminar">&#128465;</button></form>
        </div>
    </div>
</article>
{{end}}{{else}}<div class="empty-timeline"><p>No hay tweets todav&iacute;a. &iexcl;S&eacute; el primero en publicar!</p></div>
{{end}}`

// 个人资料头部片段
const profileHeaderTemplate = `<div class="user-meta">
    <h1 class="user-name">{{.DisplayName}}</h1>
    <p class="user-username">@{{.Username}}</p>
    <p class="user-bio">{{if .Bio}}{{.Bio}}{{else}}Sin biograf&iacute;a definida{{end}}<br></p>
    <div class="user-stats">
        <span><strong>{{.PostsCount}}</strong> Posts</span>
        <span><strong>{{.FollowingCount}}</strong> Siguiendo</span>
        <span><strong>{{.FollowersCount}}</strong> Seguidores</span>
    </div>
</div>
`

// 个人资料页帖子列表片段
const profilePostsTemplate = `{{$user := .User}}{{if .Posts}}{{range .Posts}}<article class="post" data-post-id="{{.ID}}">
    <div class="post-avatar">
        <div class="avatar small"></div>
    </div>
    <div class="post-content">
        <div class="post-header">
            <span class="post-author">{{authorName $user}}</span>
            <span class="post-username">@{{$user.Username}}</span>
            <form method="post" action="/profile/posts/{{.ID}}/delete"><button class="delete-btn" title="Eliminar post">&#128465;</button></form>
        </div>
        <p class="post-text">{{.Content}}</p>
    </div>
</article>
{{end}}{{else}}<div class="empty-timeline"><p>No hay posts todav&iacute;a.</p></div>
{{end}}`
